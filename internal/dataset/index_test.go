package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// writePNG encodes a small solid image at path, creating parent directories.
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// writeFile writes raw content at path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

type lineEntry struct {
	ImageName     string      `json:"image_name"`
	UnitIntervals [][]float64 `json:"unit_intervals"`
	UnitClasses   []int       `json:"unit_classes"`
}

// writeLineLabels writes a line-level label file with one entry per name.
// Each entry's class list is {classID}.
func writeLineLabels(t *testing.T, path string, classID int, names ...string) {
	t.Helper()
	entries := make([]lineEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, lineEntry{
			ImageName:     name,
			UnitIntervals: [][]float64{{0, 1.5}},
			UnitClasses:   []int{classID},
		})
	}
	data, err := json.Marshal(map[string]interface{}{"line_level_info": entries})
	if err != nil {
		t.Fatalf("failed to marshal labels: %v", err)
	}
	writeFile(t, path, string(data))
}

func lineLabel(classID int) LineLabel {
	return LineLabel{
		UnitIntervals: []Interval{{0, 1.5}},
		UnitClasses:   []int{classID},
	}
}

// newLineDataset creates the images/lines and labels/line_level directories.
func newLineDataset(t *testing.T) (root, imageDir, labelDir string) {
	t.Helper()
	root = t.TempDir()
	imageDir, labelDir = LineLevel.Paths(root)
	for _, dir := range []string{imageDir, labelDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}
	return root, imageDir, labelDir
}

func TestNew_TwoImagesOneLabelFile(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "b.png"), 8, 4)
	writePNG(t, filepath.Join(imageDir, "a.png"), 8, 4)

	data := `{"line_level_info": [
		{"image_name": "a.png", "unit_intervals": [[0, 1.5]], "unit_classes": [1]},
		{"image_name": "b.png", "unit_intervals": [[0, 1.5]], "unit_classes": [2]}
	]}`
	writeFile(t, filepath.Join(labelDir, "l1.json"), data)

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", idx.Len())
	}

	for i, want := range []LineLabel{lineLabel(1), lineLabel(2)} {
		img, label, err := idx.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Errorf("Get(%d) image size: got %v", i, img.Bounds())
		}
		if !reflect.DeepEqual(label, want) {
			t.Errorf("Get(%d) label: got %+v, want %+v", i, label, want)
		}
	}

	entry, err := idx.Entry(1)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Name != "b.png" || entry.Path != filepath.Join(imageDir, "b.png") {
		t.Errorf("Entry(1): got %+v", entry)
	}
}

func TestNew_MissingLabel(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writePNG(t, filepath.Join(imageDir, "b.png"), 2, 2)
	writeLineLabels(t, filepath.Join(labelDir, "l1.json"), 1, "a.png")

	idx, err := New(root, LineLevel)
	if err == nil {
		t.Fatal("New should fail when an image has no label")
	}
	if idx != nil {
		t.Error("New should not return a partial index")
	}
	if !errors.Is(err, ErrLabelNotFound) {
		t.Errorf("expected ErrLabelNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "b.png") {
		t.Errorf("error should name b.png: %v", err)
	}

	var lnf *LabelNotFoundError
	if !errors.As(err, &lnf) {
		t.Fatalf("expected *LabelNotFoundError, got %T", err)
	}
	if want := []string{filepath.Join(imageDir, "b.png")}; !reflect.DeepEqual(lnf.Paths, want) {
		t.Errorf("Paths: got %v, want %v", lnf.Paths, want)
	}
}

func TestNew_MissingLabelsCollected(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	for _, name := range []string{"d.png", "a.png", "c.png", "b.png"} {
		writePNG(t, filepath.Join(imageDir, name), 2, 2)
	}
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "b.png")

	_, err := New(root, LineLevel)
	var lnf *LabelNotFoundError
	if !errors.As(err, &lnf) {
		t.Fatalf("expected *LabelNotFoundError, got %v", err)
	}

	want := []string{
		filepath.Join(imageDir, "a.png"),
		filepath.Join(imageDir, "c.png"),
		filepath.Join(imageDir, "d.png"),
	}
	if !reflect.DeepEqual(lnf.Paths, want) {
		t.Errorf("Paths: got %v, want %v", lnf.Paths, want)
	}
	if !strings.Contains(err.Error(), "and 2 more") {
		t.Errorf("error should report the remaining count: %v", err)
	}
}

func TestNew_DirectoryNotFound(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, root string)
		wantKind string
	}{
		{
			name: "image dir missing, label dir present",
			setup: func(t *testing.T, root string) {
				os.MkdirAll(filepath.Join(root, "labels", "line_level"), 0o755)
			},
			wantKind: "image",
		},
		{
			name: "label dir missing",
			setup: func(t *testing.T, root string) {
				os.MkdirAll(filepath.Join(root, "images", "lines"), 0o755)
			},
			wantKind: "label",
		},
		{
			name:     "both missing",
			setup:    func(t *testing.T, root string) {},
			wantKind: "image",
		},
		{
			name: "image dir is a file",
			setup: func(t *testing.T, root string) {
				writeFile(t, filepath.Join(root, "images", "lines"), "x")
				os.MkdirAll(filepath.Join(root, "labels", "line_level"), 0o755)
			},
			wantKind: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			_, err := New(root, LineLevel)
			if !errors.Is(err, ErrDirectoryNotFound) {
				t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
			}
			var dnf *DirectoryNotFoundError
			if !errors.As(err, &dnf) {
				t.Fatalf("expected *DirectoryNotFoundError, got %T", err)
			}
			if dnf.Kind != tt.wantKind {
				t.Errorf("Kind: got %s, want %s", dnf.Kind, tt.wantKind)
			}
		})
	}
}

func TestNew_HiddenPathsExcluded(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	// None of these have labels; indexing them would fail construction.
	writePNG(t, filepath.Join(imageDir, ".git", "x.png"), 2, 2)
	writePNG(t, filepath.Join(imageDir, "sub", ".cache", "deep", "y.png"), 2, 2)
	writePNG(t, filepath.Join(imageDir, ".hidden.png"), 2, 2)

	writeLineLabels(t, filepath.Join(labelDir, "labels.json"), 1, "a.png")
	// Would override a.png if it were read.
	writeLineLabels(t, filepath.Join(labelDir, ".ipynb_checkpoints", "y.json"), 99, "a.png", "x.png")
	writeLineLabels(t, filepath.Join(labelDir, ".zz.json"), 98, "a.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if idx.Len() != 1 {
		t.Fatalf("Len: got %d, want 1 (paths %v)", idx.Len(), idx.Paths())
	}
	if _, ok := idx.Lookup("x.png"); ok {
		t.Error("label from hidden directory should not be indexed")
	}
	_, label, err := idx.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(label, lineLabel(1)) {
		t.Errorf("label: got %+v, want class 1", label)
	}
	if want := []string{filepath.Join(labelDir, "labels.json")}; !reflect.DeepEqual(idx.LabelFiles(), want) {
		t.Errorf("LabelFiles: got %v, want %v", idx.LabelFiles(), want)
	}
}

func TestNew_OnlyPNGFilesIndexed(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writeFile(t, filepath.Join(imageDir, "b.jpg"), "x")
	writeFile(t, filepath.Join(imageDir, "c.PNG"), "x")
	writeFile(t, filepath.Join(imageDir, "notes.txt"), "x")
	if err := os.MkdirAll(filepath.Join(imageDir, "dir.png"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "a.png")
	writeFile(t, filepath.Join(labelDir, "readme.txt"), "not json")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len: got %d, want 1 (paths %v)", idx.Len(), idx.Paths())
	}
}

func TestNew_SortedByNameAcrossSubdirs(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	files := []string{
		filepath.Join("z", "a.png"),
		filepath.Join("a", "c.png"),
		"b.png",
		filepath.Join("m", "a.png"),
	}
	for _, f := range files {
		writePNG(t, filepath.Join(imageDir, f), 2, 2)
	}
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "a.png", "b.png", "c.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{
		filepath.Join(imageDir, "m", "a.png"),
		filepath.Join(imageDir, "z", "a.png"),
		filepath.Join(imageDir, "b.png"),
		filepath.Join(imageDir, "a", "c.png"),
	}
	if !reflect.DeepEqual(idx.Paths(), want) {
		t.Errorf("Paths:\n got %v\nwant %v", idx.Paths(), want)
	}

	// Same-named images share one label.
	_, l0, _ := idx.Get(0)
	_, l1, _ := idx.Get(1)
	if !reflect.DeepEqual(l0, l1) {
		t.Errorf("duplicate names should share a label: %+v vs %+v", l0, l1)
	}

	again, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("second New failed: %v", err)
	}
	if !reflect.DeepEqual(again.Paths(), idx.Paths()) {
		t.Error("rebuilding from an unchanged tree changed the ordering")
	}
}

func TestNew_LaterLabelFileWins(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writePNG(t, filepath.Join(imageDir, "b.png"), 2, 2)

	// Merge order is the sorted path relative to the label dir:
	// 1.json < 2.json < nested/0.json.
	writeLineLabels(t, filepath.Join(labelDir, "2.json"), 2, "a.png")
	writeLineLabels(t, filepath.Join(labelDir, "1.json"), 1, "a.png", "b.png")
	writeLineLabels(t, filepath.Join(labelDir, "nested", "0.json"), 3, "b.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	wantFiles := []string{
		filepath.Join(labelDir, "1.json"),
		filepath.Join(labelDir, "2.json"),
		filepath.Join(labelDir, "nested", "0.json"),
	}
	if !reflect.DeepEqual(idx.LabelFiles(), wantFiles) {
		t.Errorf("LabelFiles: got %v, want %v", idx.LabelFiles(), wantFiles)
	}

	if label, _ := idx.Lookup("a.png"); !reflect.DeepEqual(label, lineLabel(2)) {
		t.Errorf("a.png: got %+v, want class 2", label)
	}
	if label, _ := idx.Lookup("b.png"); !reflect.DeepEqual(label, lineLabel(3)) {
		t.Errorf("b.png: got %+v, want class 3", label)
	}
}

func TestNew_UnicodeNormalizedNames(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	// Decomposed "e" + combining acute on disk, composed form in the label.
	writePNG(t, filepath.Join(imageDir, "cafe\u0301.png"), 2, 2)
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 5, "caf\u00e9.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, label, err := idx.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(label, lineLabel(5)) {
		t.Errorf("label: got %+v, want class 5", label)
	}
}

func TestNew_LabelParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"line_level_info": [`},
		{"wrong field type", `{"line_level_info": {"image_name": "a.png"}}`},
		{"missing image name", `{"line_level_info": [{"unit_classes": [1]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, imageDir, labelDir := newLineDataset(t)
			writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
			writeFile(t, filepath.Join(labelDir, "bad.json"), tt.content)

			_, err := New(root, LineLevel)
			if !errors.Is(err, ErrLabelParse) {
				t.Fatalf("expected ErrLabelParse, got %v", err)
			}
			if !strings.Contains(err.Error(), "bad.json") {
				t.Errorf("error should name the label file: %v", err)
			}
		})
	}
}

func TestNew_EmptyDataset(t *testing.T) {
	root, _, _ := newLineDataset(t)

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len: got %d, want 0", idx.Len())
	}
	if _, _, err := idx.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(0) on empty index: got %v", err)
	}
}

func TestNew_IncompleteVariant(t *testing.T) {
	if _, err := New(t.TempDir(), Variant{Name: "broken"}); err == nil {
		t.Error("New should reject a variant without policies")
	}
}

func TestNew_CustomVariant(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "img", "a.png"), 2, 2)
	writeFile(t, filepath.Join(root, "lbl", "a.json"), "{}")

	v := Variant{
		Name: "flat",
		Paths: func(root string) (string, string) {
			return filepath.Join(root, "img"), filepath.Join(root, "lbl")
		},
		ParseLabels: func(path string) (map[string]Label, error) {
			return map[string]Label{"a.png": LineLabel{UnitClasses: []int{7}}}, nil
		},
	}

	idx, err := New(root, v)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if idx.Variant().Name != "flat" {
		t.Errorf("Variant: got %s, want flat", idx.Variant().Name)
	}
	if label, ok := idx.Lookup("a.png"); !ok || label.UnitCount() != 1 {
		t.Errorf("Lookup: got %+v, %v", label, ok)
	}

	failing := v
	failing.ParseLabels = func(path string) (map[string]Label, error) {
		return nil, errors.New("boom")
	}
	_, err = New(root, failing)
	var pe *LabelParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *LabelParseError, got %v", err)
	}
	if pe.Path != filepath.Join(root, "lbl", "a.json") {
		t.Errorf("Path: got %s", pe.Path)
	}
}

func TestGet_OutOfRange(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "a.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, i := range []int{-1, 1, 100} {
		if _, _, err := idx.Get(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if _, err := idx.Entry(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Entry(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestGet_DecodeError(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	bad := filepath.Join(imageDir, "corrupt.png")
	writeFile(t, bad, "definitely not a png")
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "corrupt.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, _, err = idx.Get(0)
	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
	var de *ImageDecodeError
	if !errors.As(err, &de) || de.Path != bad {
		t.Errorf("expected ImageDecodeError for %s, got %v", bad, err)
	}
}

func TestGet_Transform(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 10, 6)
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "a.png")

	calls := 0
	crop := func(img image.Image) image.Image {
		calls++
		return image.NewGray(image.Rect(0, 0, 3, 3))
	}

	idx, err := New(root, LineLevel, WithTransform(crop))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	img, _, err := idx.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("expected transformed *image.Gray, got %T", img)
	}
	if calls != 1 {
		t.Errorf("transform calls: got %d, want 1", calls)
	}
}

func TestGet_Concurrent(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	names := []string{"a.png", "b.png", "c.png"}
	for _, name := range names {
		writePNG(t, filepath.Join(imageDir, name), 4, 4)
	}
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, names...)

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 30)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, _, err := idx.Get(i % idx.Len()); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Get error: %v", err)
	}
}

func TestPathsReturnsCopy(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "a.png")

	idx, err := New(root, LineLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	paths := idx.Paths()
	paths[0] = "mutated"
	if entry, _ := idx.Entry(0); entry.Name != "a.png" {
		t.Error("mutating Paths() result changed the index")
	}
}

func TestPageLevel(t *testing.T) {
	root := t.TempDir()
	imageDir, labelDir := PageLevel.Paths(root)
	writePNG(t, filepath.Join(imageDir, "p1.png"), 20, 30)
	writePNG(t, filepath.Join(imageDir, "p2.png"), 20, 30)

	data := `{"page_level_info": [
		{"image_name": "p1.png", "lines": [
			{"bounds": {"x1": 0, "y1": 0, "x2": 20, "y2": 10}, "unit_intervals": [[0, 1]], "unit_classes": [4]},
			{"bounds": {"x1": 0, "y1": 10, "x2": 20, "y2": 20}, "unit_intervals": [[1, 2], [2, 3]], "unit_classes": [5, 6]}
		]},
		{"image_name": "p2.png", "lines": []}
	]}`
	writeFile(t, filepath.Join(labelDir, "pages.json"), data)

	idx, err := New(root, PageLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", idx.Len())
	}

	_, label, err := idx.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	page, ok := label.(PageLabel)
	if !ok {
		t.Fatalf("expected PageLabel, got %T", label)
	}
	if len(page.Lines) != 2 {
		t.Fatalf("Lines: got %d, want 2", len(page.Lines))
	}
	if page.Lines[1].Bounds != (Bounds{X1: 0, Y1: 10, X2: 20, Y2: 20}) {
		t.Errorf("Bounds: got %+v", page.Lines[1].Bounds)
	}
	if page.UnitCount() != 3 {
		t.Errorf("UnitCount: got %d, want 3", page.UnitCount())
	}
}

func TestPageLevel_DoesNotReadLineLabels(t *testing.T) {
	root := t.TempDir()
	imageDir, labelDir := PageLevel.Paths(root)
	writePNG(t, filepath.Join(imageDir, "p1.png"), 2, 2)
	// A line-level document has no page_level_info field and labels nothing.
	writeLineLabels(t, filepath.Join(labelDir, "l.json"), 1, "p1.png")

	if _, err := New(root, PageLevel); !errors.Is(err, ErrLabelNotFound) {
		t.Errorf("expected ErrLabelNotFound, got %v", err)
	}
}

func TestNew_LogsLabelFileWithoutEntries(t *testing.T) {
	root, imageDir, labelDir := newLineDataset(t)
	writePNG(t, filepath.Join(imageDir, "a.png"), 2, 2)
	writeLineLabels(t, filepath.Join(labelDir, "good.json"), 1, "a.png")
	// Misspelled top-level key.
	writeFile(t, filepath.Join(labelDir, "typo.json"), `{"line_levle_info": [{"image_name": "a.png"}]}`)

	var buf bytes.Buffer
	idx, err := New(root, LineLevel, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len: got %d, want 1", idx.Len())
	}

	out := buf.String()
	if !strings.Contains(out, filepath.Join(labelDir, "typo.json")+" labels no images") {
		t.Errorf("log should name typo.json:\n%s", out)
	}
	if strings.Contains(out, "good.json labels no images") {
		t.Errorf("good.json should not be reported:\n%s", out)
	}
}
