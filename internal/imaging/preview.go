package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// PreviewResult contains a downscaled copy of an image.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview fits img into a maxSide x maxSide box, preserving aspect ratio.
// Images already inside the box keep their size.
func Preview(img image.Image, maxSide int, grayscale bool) (*PreviewResult, error) {
	if maxSide <= 0 {
		return nil, fmt.Errorf("invalid preview size: %d", maxSide)
	}

	var out image.Image = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	if grayscale {
		out = effect.Grayscale(out)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
