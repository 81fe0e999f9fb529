// Package dataset indexes a directory tree of PNG images and JSON label files.
//
// A dataset root follows a fixed layout, selected by a Variant:
//
//	<root>/images/lines/**/*.png     <root>/labels/line_level/**/*.json
//	<root>/images/pages/**/*.png     <root>/labels/page_level/**/*.json
//
// New walks both directories once, parses and merges every label file into a
// single name-keyed table and checks that every image has a label. The
// resulting Index is immutable and answers Len and Get(i) lookups.
//
// # Ordering
//
// Images are sorted by file name, ties broken by full path. Label files are
// merged in lexicographic order of their path relative to the label
// directory; when two files label the same image the later file wins.
//
// # Hidden Paths
//
// Any path with a component starting with "." (other than "." and "..") is
// skipped during both walks. This drops ".git", ".ipynb_checkpoints" and
// editor dotfiles.
//
// # Name Matching
//
// Labels are keyed by image file name only, not by relative path. Two images
// with the same name in different sub-directories share one label entry.
// Names are compared after Unicode NFC normalisation.
//
// # Thread Safety
//
// An Index is never mutated after New returns. Get decodes from disk on every
// call and may be called from multiple goroutines without synchronization.
package dataset
