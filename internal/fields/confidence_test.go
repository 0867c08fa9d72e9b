package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medilens/report-scanner/constants"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		cat    constants.ReportCategory
		fields int
		want   float64
	}{
		{"half the diabetes schema", constants.Diabetes, 4, 50},
		{"full diabetes schema", constants.Diabetes, 8, 100},
		{"half the liver schema", constants.Liver, 6, 50},
		{"no fields", constants.Heart, 0, 0},
		{"negative count", constants.Heart, -1, 0},
		{"unknown category", constants.Unknown, 5, 0},
		{"single kidney field", constants.Kidney, 1, 100.0 / 24.0 * 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.cat, tt.fields), 1e-9)
		})
	}
}

// Optional extras can push the populated count past the nominal schema
// size; the score clamps at 100.
func TestScore_Clamp(t *testing.T) {
	assert.Equal(t, 100.0, Score(constants.Liver, 14))
}
