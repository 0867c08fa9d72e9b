// Package classify decides which report category a raw text blob belongs to.
//
// Classification is two-tier keyword matching. Tier 1 holds explicit
// title/section markers ("liver function test", "diabetes report", ...);
// tier 2 holds fallback clinical terms ("bilirubin", "creatinine", ...) and
// is consulted only when no tier-1 phrase matched. Within each tier the
// category order is fixed and first match wins: a report whose title says
// "Liver Function Test" stays a liver report even when its body mentions
// glucose or creatinine from a routine panel.
package classify

import (
	"strings"

	"github.com/medilens/report-scanner/constants"
)

type rule struct {
	category constants.ReportCategory
	phrases  []string
}

// Tier 1: category-defining title phrases, checked liver -> diabetes ->
// kidney -> heart. The order is a tie-break policy, not incidental.
var titleRules = []rule{
	{constants.Liver, []string{"liver function test", "lft", "liver report", "hepatic"}},
	{constants.Diabetes, []string{"diabetes", "diabetic", "diabetes report", "glucose test"}},
	{constants.Kidney, []string{"kidney", "renal", "kidney function test", "kft"}},
	{constants.Heart, []string{"heart", "cardiac", "ecg", "electrocardiogram", "heart function test"}},
}

// Tier 2: clinical-term fallback, checked liver -> kidney -> diabetes -> heart.
var termRules = []rule{
	{constants.Liver, []string{"bilirubin", "sgpt", "sgot", "alkaline phosphatase"}},
	{constants.Kidney, []string{"creatinine", "urea", "glomerular", "nephrology"}},
	{constants.Diabetes, []string{"insulin", "hba1c", "glycated hemoglobin"}},
	{constants.Heart, []string{"chest pain", "angina", "coronary", "myocardial"}},
}

// Classify returns the report category for a raw text blob, or
// constants.Unknown when no vocabulary from either tier is present.
// Pure and deterministic; matching is case-insensitive.
func Classify(text string) constants.ReportCategory {
	lower := strings.ToLower(text)

	for _, r := range titleRules {
		if containsAny(lower, r.phrases) {
			return r.category
		}
	}
	for _, r := range termRules {
		if containsAny(lower, r.phrases) {
			return r.category
		}
	}
	return constants.Unknown
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
