package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Variant selects the directory convention and label schema of a dataset.
//
// Paths must be pure path joining. ParseLabels reads one JSON file and
// returns image name -> payload. Adding a granularity means adding a Variant
// value; Index itself does not change.
type Variant struct {
	Name        string
	Paths       func(root string) (imageDir, labelDir string)
	ParseLabels func(path string) (map[string]Label, error)
}

// LineLevel indexes images/lines against labels/line_level.
var LineLevel = Variant{
	Name: "line_level",
	Paths: func(root string) (string, string) {
		return filepath.Join(root, "images", "lines"), filepath.Join(root, "labels", "line_level")
	},
	ParseLabels: ParseLineLabels,
}

// PageLevel indexes images/pages against labels/page_level.
var PageLevel = Variant{
	Name: "page_level",
	Paths: func(root string) (string, string) {
		return filepath.Join(root, "images", "pages"), filepath.Join(root, "labels", "page_level")
	},
	ParseLabels: ParsePageLabels,
}

// VariantByName resolves a variant name as written in config files or flags.
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line_level", "line-level", "lines", "line":
		return LineLevel, nil
	case "page_level", "page-level", "pages", "page":
		return PageLevel, nil
	default:
		return Variant{}, fmt.Errorf("unknown variant: %q (want line_level or page_level)", name)
	}
}
