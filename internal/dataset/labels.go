package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Label is the parsed, variant-specific annotation for one image.
type Label interface {
	// UnitCount returns the number of annotated units in the payload.
	UnitCount() int
}

// Interval is a [start, end] pair.
type Interval [2]float64

// UnmarshalJSON rejects arrays that do not hold exactly two numbers.
func (iv *Interval) UnmarshalJSON(b []byte) error {
	var vals []float64
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	if len(vals) != 2 {
		return fmt.Errorf("interval %s: want 2 elements, got %d", b, len(vals))
	}
	*iv = Interval{vals[0], vals[1]}
	return nil
}

// LineLabel is the payload of a line-level image. Class ids are integers.
type LineLabel struct {
	UnitIntervals []Interval `json:"unit_intervals"`
	UnitClasses   []int      `json:"unit_classes"`
}

func (l LineLabel) UnitCount() int { return len(l.UnitClasses) }

// Bounds is a pixel rectangle; (X1,Y1) inclusive, (X2,Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// PageLine is one annotated line on a page image.
type PageLine struct {
	Bounds        Bounds     `json:"bounds"`
	UnitIntervals []Interval `json:"unit_intervals"`
	UnitClasses   []int      `json:"unit_classes"`
}

// PageLabel is the payload of a page-level image.
type PageLabel struct {
	Lines []PageLine `json:"lines"`
}

func (p PageLabel) UnitCount() int {
	n := 0
	for _, line := range p.Lines {
		n += len(line.UnitClasses)
	}
	return n
}

// ParseLineLabels reads a line-level label file:
//
//	{"line_level_info": [{"image_name": "a.png", "unit_intervals": [[0, 1.5]], "unit_classes": [3]}]}
//
// A file without the line_level_info field yields an empty mapping.
func ParseLineLabels(path string) (map[string]Label, error) {
	var doc struct {
		Entries []struct {
			ImageName string `json:"image_name"`
			LineLabel
		} `json:"line_level_info"`
	}
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}

	labels := make(map[string]Label, len(doc.Entries))
	for i, e := range doc.Entries {
		if e.ImageName == "" {
			return nil, fmt.Errorf("line_level_info[%d]: missing image_name", i)
		}
		labels[e.ImageName] = e.LineLabel
	}
	return labels, nil
}

// ParsePageLabels reads a page-level label file:
//
//	{"page_level_info": [{"image_name": "p.png", "lines": [{"bounds": {...}, "unit_intervals": [...], "unit_classes": [...]}]}]}
//
// A file without the page_level_info field yields an empty mapping.
func ParsePageLabels(path string) (map[string]Label, error) {
	var doc struct {
		Entries []struct {
			ImageName string `json:"image_name"`
			PageLabel
		} `json:"page_level_info"`
	}
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}

	labels := make(map[string]Label, len(doc.Entries))
	for i, e := range doc.Entries {
		if e.ImageName == "" {
			return nil, fmt.Errorf("page_level_info[%d]: missing image_name", i)
		}
		labels[e.ImageName] = e.PageLabel
	}
	return labels, nil
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open label file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode label file: %w", err)
	}
	return nil
}
