package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, Unknown.Valid())
	assert.False(t, ReportCategory("bogus").Valid())
}

func TestExpectedFieldCount(t *testing.T) {
	assert.Equal(t, 13, ExpectedFieldCount(Heart))
	assert.Equal(t, 8, ExpectedFieldCount(Diabetes))
	assert.Equal(t, 24, ExpectedFieldCount(Kidney))
	assert.Equal(t, 12, ExpectedFieldCount(Liver))
	assert.Equal(t, 0, ExpectedFieldCount(Unknown))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want ReportCategory
		ok   bool
	}{
		{"liver", Liver, true},
		{"LIVER", Liver, true},
		{"  heart ", Heart, true},
		{"unknown", Unknown, false},
		{"", Unknown, false},
		{"lungs", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := Canonicalize(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestCategories_CopyIsIndependent(t *testing.T) {
	cats := Categories()
	cats[0] = Unknown
	assert.Equal(t, Heart, Categories()[0])
}
