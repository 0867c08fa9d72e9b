package constants

import "strings"

// ReportCategory is the closed set of report types the scanner understands.
type ReportCategory string

const (
	Heart    ReportCategory = "heart"
	Diabetes ReportCategory = "diabetes"
	Kidney   ReportCategory = "kidney"
	Liver    ReportCategory = "liver"
	Unknown  ReportCategory = "unknown"
)

var allCategories = []ReportCategory{
	Heart,
	Diabetes,
	Kidney,
	Liver,
}

// expectedFieldCount is the nominal schema size per category, used only to
// normalize extraction confidence. These track the prediction-model inputs
// and are fixed configuration, not derived from the field tables.
var expectedFieldCount = map[ReportCategory]int{
	Heart:    13,
	Diabetes: 8,
	Kidney:   24,
	Liver:    12,
}

// Valid reports whether c is a scannable category (Unknown is not).
func (c ReportCategory) Valid() bool {
	_, ok := expectedFieldCount[c]
	return ok
}

// ExpectedFieldCount returns the nominal field count for a category,
// or 0 for Unknown and unrecognized values.
func ExpectedFieldCount(c ReportCategory) int {
	return expectedFieldCount[c]
}

// Categories returns the scannable categories in declaration order.
func Categories() []ReportCategory {
	out := make([]ReportCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form label to a ReportCategory.
func Canonicalize(input string) (ReportCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return Unknown, false
}
