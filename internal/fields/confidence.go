package fields

import "github.com/medilens/report-scanner/constants"

// Score converts a populated-field count into a 0..100 confidence
// percentage against the category's nominal schema size. Clamped at 100
// when optional extras push the count past the nominal size; never
// negative. Returns 0 for Unknown.
func Score(cat constants.ReportCategory, fieldCount int) float64 {
	expected := constants.ExpectedFieldCount(cat)
	if expected <= 0 || fieldCount <= 0 {
		return 0
	}
	conf := float64(fieldCount) / float64(expected) * 100
	if conf > 100 {
		return 100
	}
	return conf
}
