package dataset

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/ironsheep/whales-dataset/internal/imaging"
)

// Transform post-processes a decoded image before Get returns it.
// Index does not inspect its output.
type Transform func(image.Image) image.Image

// Option configures New.
type Option func(*Index)

// WithTransform sets the transform applied by Get.
func WithTransform(t Transform) Option {
	return func(idx *Index) { idx.transform = t }
}

// WithLogger sets the logger used for construction diagnostics.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(idx *Index) {
		if l != nil {
			idx.logger = l
		}
	}
}

// Entry describes one indexed image without decoding it.
type Entry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Label Label  `json:"label"`
}

// Index is an immutable, validated mapping from position to (image, label).
type Index struct {
	root      string
	variant   Variant
	imageDir  string
	labelDir  string
	transform Transform
	logger    *log.Logger

	imagePaths []string
	labelFiles []string
	labels     map[string]Label
}

// New builds an Index for the dataset at root.
//
// Construction fails with a DirectoryNotFoundError if the image or label
// directory is missing (image directory checked first), a LabelParseError if
// any label file cannot be decoded, and a LabelNotFoundError listing every
// image without a label. There is no partially built Index.
func New(root string, v Variant, opts ...Option) (*Index, error) {
	if v.Paths == nil || v.ParseLabels == nil {
		return nil, fmt.Errorf("variant %q has no path or label policy", v.Name)
	}

	idx := &Index{
		root:    root,
		variant: v,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(idx)
	}

	idx.imageDir, idx.labelDir = v.Paths(root)
	if err := requireDir("image", idx.imageDir); err != nil {
		return nil, err
	}
	if err := requireDir("label", idx.labelDir); err != nil {
		return nil, err
	}

	images, err := collectFiles(idx.imageDir, ".png")
	if err != nil {
		return nil, err
	}
	sortImages(images)
	idx.imagePaths = images

	labelFiles, err := collectFiles(idx.labelDir, ".json")
	if err != nil {
		return nil, err
	}
	sort.Strings(labelFiles)
	idx.labelFiles = labelFiles

	idx.labels, err = idx.mergeLabels()
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, p := range idx.imagePaths {
		if _, ok := idx.labels[nameKey(filepath.Base(p))]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, &LabelNotFoundError{Paths: missing}
	}

	idx.logger.Printf("indexed %d images against %d labels from %d files (%s)",
		len(idx.imagePaths), len(idx.labels), len(idx.labelFiles), v.Name)
	return idx, nil
}

// mergeLabels parses label files in order; later files override earlier ones.
func (idx *Index) mergeLabels() (map[string]Label, error) {
	merged := make(map[string]Label)
	for _, path := range idx.labelFiles {
		parsed, err := idx.variant.ParseLabels(path)
		if err != nil {
			var pe *LabelParseError
			if errors.As(err, &pe) {
				return nil, err
			}
			return nil, &LabelParseError{Path: path, Err: err}
		}
		if len(parsed) == 0 {
			idx.logger.Printf("label file %s labels no images", path)
		}
		for name, label := range parsed {
			key := nameKey(name)
			if _, dup := merged[key]; dup {
				idx.logger.Printf("label for %s overridden by %s", name, path)
			}
			merged[key] = label
		}
	}
	return merged, nil
}

// nameKey normalises an image name for label lookup.
func nameKey(name string) string {
	return norm.NFC.String(name)
}

// Len returns the number of indexed images.
func (idx *Index) Len() int { return len(idx.imagePaths) }

// Get decodes image i and returns it with its label. The image is read from
// disk on every call; the transform, if any, is applied to the result.
func (idx *Index) Get(i int) (image.Image, Label, error) {
	if err := idx.checkIndex(i); err != nil {
		return nil, nil, err
	}

	path := idx.imagePaths[i]
	img, err := imaging.Load(path)
	if err != nil {
		return nil, nil, &ImageDecodeError{Path: path, Err: err}
	}
	if idx.transform != nil {
		img = idx.transform(img)
	}
	return img, idx.labels[nameKey(filepath.Base(path))], nil
}

// Entry returns the path, name and label of image i without decoding it.
func (idx *Index) Entry(i int) (Entry, error) {
	if err := idx.checkIndex(i); err != nil {
		return Entry{}, err
	}
	path := idx.imagePaths[i]
	name := filepath.Base(path)
	return Entry{
		Index: i,
		Name:  name,
		Path:  path,
		Label: idx.labels[nameKey(name)],
	}, nil
}

// Lookup returns the merged label for an image file name.
func (idx *Index) Lookup(name string) (Label, bool) {
	l, ok := idx.labels[nameKey(name)]
	return l, ok
}

func (idx *Index) checkIndex(i int) error {
	if i < 0 || i >= len(idx.imagePaths) {
		return &IndexOutOfRangeError{Index: i, Len: len(idx.imagePaths)}
	}
	return nil
}

// Paths returns a copy of the image paths in index order.
func (idx *Index) Paths() []string {
	return append([]string(nil), idx.imagePaths...)
}

// LabelFiles returns a copy of the label files in merge order.
func (idx *Index) LabelFiles() []string {
	return append([]string(nil), idx.labelFiles...)
}

// Root returns the dataset root passed to New.
func (idx *Index) Root() string { return idx.root }

// Variant returns the variant the index was built with.
func (idx *Index) Variant() Variant { return idx.variant }

// ImageDir returns the resolved image directory.
func (idx *Index) ImageDir() string { return idx.imageDir }

// LabelDir returns the resolved label directory.
func (idx *Index) LabelDir() string { return idx.labelDir }

// LabelCount returns the number of distinct image names in the merged label table.
func (idx *Index) LabelCount() int { return len(idx.labels) }
