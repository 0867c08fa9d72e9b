package fields

import (
	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

var (
	yes = entity.Enum("yes")
	no  = entity.Enum("no")
)

// kidneySchema targets the 24 inputs of the kidney-disease model.
//
// Two intentional quirks carried over from the source data pipeline:
//   - BUN and serum urea both land in "bu": the urea spec is declared after
//     the BUN spec and overwrites it when both appear.
//   - Flag fields (htn, dm, cad, pe, ane) read "yes" only when the word
//     "yes" occurs anywhere in the text while the topic phrase is present;
//     a mentioned-but-unconfirmed topic reads "no".
var kidneySchema = &Schema{
	Category: constants.Kidney,
	Fields: []FieldSpec{
		numField("age", Integer,
			labelValue(Integer, "age"),
			valueLabel(Integer, []string{"years", "yrs"}, "age"),
		),
		numField("bp", Integer,
			labelValue(Integer, "blood pressure", "bp"),
			valueLabel(Integer, []string{"mmhg", "mm hg"}, "blood pressure", "bp"),
		),
		numField("sg", Float,
			labelValue(Float, "specific gravity", "sg"),
		),
		numField("al", Integer,
			labelValue(Integer, "albumin", "al"),
		),
		numField("su", Integer,
			labelValue(Integer, "sugar", "su"),
		),
		enumField("rbc",
			enumCase(entity.Enum("normal"), "normal rbc", "rbc normal"),
			enumCase(entity.Enum("abnormal"), "abnormal rbc", "rbc abnormal"),
		),
		enumField("pc",
			enumCase(entity.Enum("normal"), "normal pc", "pc normal"),
			enumCase(entity.Enum("abnormal"), "abnormal pc", "pc abnormal"),
		),
		enumField("pcc",
			enumCase(entity.Enum("present"), "pcc present"),
			enumCase(entity.Enum("notpresent"), "pcc notpresent", "pcc not present"),
		),
		enumField("ba",
			enumCase(entity.Enum("present"), "ba present"),
			enumCase(entity.Enum("notpresent"), "ba notpresent", "ba not present"),
		),
		numField("bgr", Integer,
			labelValue(Integer, "blood glucose", "bgr"),
			valueLabel(Integer, []string{"mg/dl"}, "blood glucose"),
		),
		numField("bu", Float,
			labelValue(Float, "bun", "blood urea nitrogen"),
		),
		// serum urea shares the bu key and wins over BUN when both appear
		numField("bu", Float,
			labelValue(Float, "serum urea", "urea"),
		),
		numField("sc", Float,
			labelValue(Float, "serum creatinine", "creatinine"),
			valueLabel(Float, []string{"mg/dl"}, "creatinine"),
		),
		numField("sod", Float,
			labelValue(Float, "serum sodium", "sodium"),
			valueLabel(Float, []string{"meq/l", "mmol/l"}, "sodium"),
		),
		numField("pot", Float,
			labelValue(Float, "serum potassium", "potassium"),
			valueLabel(Float, []string{"meq/l", "mmol/l"}, "potassium"),
		),
		numField("hemo", Float,
			labelValue(Float, "hemoglobin", "hemo"),
			valueLabel(Float, []string{"g/dl"}, "hemoglobin"),
		),
		numField("pcv", Integer,
			labelValue(Integer, "packed cell volume", "pcv"),
		),
		numField("wc", Integer,
			labelValue(Integer, "white blood cell", "wbc", "wc"),
		),
		numField("rc", Float,
			labelValue(Float, "red blood cell count", "rbc count", "rc"),
		),
		flagField("htn", yes, no, "hypertension", "htn"),
		flagField("dm", yes, no, "diabetes mellitus", "dm"),
		flagField("cad", yes, no, "coronary artery disease", "cad"),
		enumField("appet",
			enumCase(entity.Enum("good"), "good appetite", "appetite good"),
			enumCase(entity.Enum("poor"), "poor appetite", "appetite poor"),
		),
		flagField("pe", yes, no, "pedal edema", "pe"),
		flagField("ane", yes, no, "anemia", "ane"),
	},
}
