package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match these through errors.Is.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrLabelNotFound     = errors.New("label not found")
	ErrLabelParse        = errors.New("label file invalid")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrImageDecode       = errors.New("image decode failed")
)

// DirectoryNotFoundError reports a missing image or label directory.
type DirectoryNotFoundError struct {
	Kind string // "image" or "label"
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("%s directory not found: %s", e.Kind, e.Path)
}

func (e *DirectoryNotFoundError) Is(target error) bool { return target == ErrDirectoryNotFound }

// LabelNotFoundError lists every image that has no entry in the label table,
// in index order.
type LabelNotFoundError struct {
	Paths []string
}

func (e *LabelNotFoundError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("no labels found for image: %s", e.Paths[0])
	}
	return fmt.Sprintf("no labels found for image: %s (and %d more)", e.Paths[0], len(e.Paths)-1)
}

func (e *LabelNotFoundError) Is(target error) bool { return target == ErrLabelNotFound }

// LabelParseError wraps a failure to read or decode one label file.
type LabelParseError struct {
	Path string
	Err  error
}

func (e *LabelParseError) Error() string {
	return fmt.Sprintf("failed to parse label file %s: %v", e.Path, e.Err)
}

func (e *LabelParseError) Unwrap() error { return e.Err }

func (e *LabelParseError) Is(target error) bool { return target == ErrLabelParse }

// IndexOutOfRangeError is returned by lookups outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// ImageDecodeError wraps a failure to open or decode an indexed image.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

func (e *ImageDecodeError) Is(target error) bool { return target == ErrImageDecode }
