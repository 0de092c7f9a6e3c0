package scan

import "strings"

// Category identifies one of the two recognized file classes.
type Category int

const (
	// CategorySource covers implementation files (.cpp).
	CategorySource Category = iota
	// CategoryHeader covers header files (.hpp).
	CategoryHeader
)

// Suffixes for the two categories. Matching is case-sensitive and applies
// to the tail of the file name, so the two can never both match one name.
const (
	SourceSuffix = ".cpp"
	HeaderSuffix = ".hpp"
)

// Categorize classifies a file name. The second return is false for names
// outside both categories; such files are skipped entirely.
func Categorize(name string) (Category, bool) {
	switch {
	case strings.HasSuffix(name, SourceSuffix):
		return CategorySource, true
	case strings.HasSuffix(name, HeaderSuffix):
		return CategoryHeader, true
	default:
		return 0, false
	}
}

// String returns the category's suffix, which is how reports label it.
func (c Category) String() string {
	if c == CategoryHeader {
		return HeaderSuffix
	}
	return SourceSuffix
}
