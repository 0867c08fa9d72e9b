package fields

import (
	"regexp"
	"strings"

	"github.com/medilens/report-scanner/internal/entity"
)

// Recognizer pattern builders. All matching is case-insensitive and labels
// are word-bounded so "age" never fires inside "percentage" and "male" never
// fires inside "female".

const (
	intToken   = `(\d+)`
	floatToken = `(\d+(?:\.\d+)?)`
)

func token(kind Kind) string {
	if kind == Integer {
		return intToken
	}
	return floatToken
}

func alternation(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return `\b(?:` + strings.Join(quoted, `|`) + `)\b`
}

// labelValue recognizes "Glucose: 95" style lines: label, optional
// separator run, numeric token.
func labelValue(kind Kind, labels ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + alternation(labels) + `[\s:]*` + token(kind))
}

// valueLabel recognizes "95 mg/dl Glucose" style lines: numeric token, unit,
// then the label later on the same line.
func valueLabel(kind Kind, units []string, labels ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + token(kind) + `\s*(?:` + strings.Join(quoteAll(units), `|`) + `)\b[^\n]*?` + alternation(labels))
}

// labelWindow recognizes a label with the numeric token anywhere later on
// the same line ("Glucose (fasting) 95").
func labelWindow(kind Kind, labels ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + alternation(labels) + `[^\n\d]*?` + token(kind))
}

func regexMust(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// phrase matches a word-bounded phrase, case-insensitively.
func phrase(p string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
}

func phrases(ps ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(ps))
	for i, p := range ps {
		out[i] = phrase(p)
	}
	return out
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = regexp.QuoteMeta(s)
	}
	return out
}

// Table construction helpers.

func numField(key string, kind Kind, patterns ...*regexp.Regexp) FieldSpec {
	return FieldSpec{Keys: []string{key}, Kind: kind, Patterns: patterns}
}

func mirrorField(keys []string, kind Kind, patterns ...*regexp.Regexp) FieldSpec {
	return FieldSpec{Keys: keys, Kind: kind, Patterns: patterns}
}

func enumField(key string, cases ...EnumCase) FieldSpec {
	return FieldSpec{Keys: []string{key}, Kind: Enumerated, Cases: cases}
}

func enumCase(v entity.FieldValue, ps ...string) EnumCase {
	return EnumCase{phrases: phrases(ps...), Value: v}
}

func flagField(key string, yes, no entity.FieldValue, topics ...string) FieldSpec {
	return FieldSpec{Keys: []string{key}, Kind: Flag, Topics: phrases(topics...), Yes: yes, No: no}
}
