package fields

import "github.com/medilens/report-scanner/constants"

// diabetesSchema targets the 8 inputs of the diabetes model.
var diabetesSchema = &Schema{
	Category: constants.Diabetes,
	Fields: []FieldSpec{
		numField("age", Integer,
			labelValue(Integer, "age"),
			valueLabel(Integer, []string{"years", "yrs"}, "age"),
		),
		numField("pregnancies", Integer,
			labelValue(Integer, "pregnancies", "pregnancy"),
		),
		numField("glucose", Integer,
			labelValue(Integer, "glucose"),
			valueLabel(Integer, []string{"mg/dl", "mmol/l"}, "glucose"),
		),
		numField("blood_pressure", Integer,
			labelValue(Integer, "blood pressure", "bp"),
			valueLabel(Integer, []string{"mmhg", "mm hg"}, "blood pressure", "bp"),
		),
		numField("skin_thickness", Integer,
			labelValue(Integer, "skin thickness", "skin"),
			valueLabel(Integer, []string{"mm"}, "skin thickness"),
		),
		numField("insulin", Integer,
			labelValue(Integer, "insulin"),
			valueLabel(Integer, []string{"mu/ml", "miu/l"}, "insulin"),
		),
		numField("bmi", Float,
			labelValue(Float, "bmi", "body mass index"),
			valueLabel(Float, []string{"kg/m2", "kg/m²"}, "bmi"),
		),
		numField("diabetes_pedigree_function", Float,
			labelValue(Float, "diabetes pedigree function", "diabetes pedigree", "pedigree"),
		),
	},
}
