package fields

import (
	"regexp"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

// heartSchema targets the 13 inputs of the heart-disease model. Chest pain
// type, rest ECG, slope, vessel count, and thalassemia are reported as coded
// integers on cardiology reports, so they parse as plain numbers.
var heartSchema = &Schema{
	Category: constants.Heart,
	Fields: []FieldSpec{
		numField("age", Integer,
			labelValue(Integer, "age"),
			valueLabel(Integer, []string{"years", "yrs"}, "age"),
		),
		enumField("sex",
			enumCase(entity.Number(1), "male"),
			enumCase(entity.Number(0), "female"),
		),
		numField("cp", Integer,
			labelValue(Integer, "chest pain", "cp"),
		),
		numField("trestbps", Integer,
			labelValue(Integer, "blood pressure", "bp", "trestbps"),
			valueLabel(Integer, []string{"mmhg", "mm hg"}, "blood pressure", "bp"),
		),
		numField("chol", Integer,
			labelValue(Integer, "cholesterol", "chol"),
			valueLabel(Integer, []string{"mg/dl"}, "cholesterol", "chol"),
		),
		{
			Keys: []string{"fbs"},
			Kind: Integer,
			Patterns: []*regexp.Regexp{
				labelValue(Integer, "fasting blood sugar", "fbs", "glucose"),
				valueLabel(Integer, []string{"mg/dl"}, "fasting blood sugar", "glucose"),
			},
			// model input is a >120 mg/dl indicator, not the raw reading
			Transform: func(v float64) float64 {
				if v > 120 {
					return 1
				}
				return 0
			},
		},
		numField("restecg", Integer,
			labelValue(Integer, "ecg", "restecg"),
		),
		numField("thalach", Integer,
			labelValue(Integer, "heart rate", "hr", "thalach"),
			valueLabel(Integer, []string{"bpm"}, "heart rate", "hr"),
		),
		flagField("exang", entity.Number(1), entity.Number(0),
			"exercise angina", "exang"),
		numField("oldpeak", Float,
			labelValue(Float, "st depression", "oldpeak"),
		),
		numField("slope", Integer,
			labelValue(Integer, "slope"),
		),
		numField("ca", Integer,
			labelValue(Integer, "vessels", "ca"),
		),
		numField("thal", Integer,
			labelValue(Integer, "thalassemia", "thal"),
		),
	},
}
