// Package imaging decodes dataset images and derives the small summaries the
// CLI and server report about them.
//
// Decoding goes through github.com/disintegration/imaging; nothing is cached,
// every Load reads the file again. All functions are stateless and may be
// called concurrently on different images.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Previews
//
// Preview shrinks an image to fit a square box and returns it as a
// base64-encoded PNG, optionally converted to grayscale.
package imaging
