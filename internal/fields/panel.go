package fields

import "github.com/medilens/report-scanner/internal/entity"

// panelSchema is the category-independent blood panel / vitals vocabulary,
// kept for audit views and debugging alongside the category extractions. It
// runs on the same engine as the category tables.
//
// ALT and SGPT name the same enzyme, as do AST and SGOT: each spec writes
// both keys so either label satisfies downstream consumers of either name.
var panelSchema = &Schema{
	Fields: []FieldSpec{
		numField("glucose", Float,
			labelValue(Float, "glucose", "blood sugar", "sugar"),
			valueLabel(Float, []string{"mg/dl", "mmol/l"}, "glucose"),
			labelWindow(Float, "glucose"),
		),
		numField("cholesterol", Float,
			labelValue(Float, "total cholesterol", "cholesterol"),
			valueLabel(Float, []string{"mg/dl"}, "cholesterol"),
			labelWindow(Float, "cholesterol"),
		),
		numField("hdl", Float,
			labelValue(Float, "hdl", "high-density lipoprotein"),
			valueLabel(Float, []string{"mg/dl"}, "hdl"),
		),
		numField("ldl", Float,
			labelValue(Float, "ldl", "low-density lipoprotein"),
			valueLabel(Float, []string{"mg/dl"}, "ldl"),
		),
		numField("triglycerides", Float,
			labelValue(Float, "triglycerides", "tg"),
			valueLabel(Float, []string{"mg/dl"}, "triglycerides"),
		),
		numField("creatinine", Float,
			labelValue(Float, "creatinine", "cr"),
			valueLabel(Float, []string{"mg/dl"}, "creatinine"),
		),
		numField("bun", Float,
			labelValue(Float, "bun", "blood urea nitrogen", "urea"),
			valueLabel(Float, []string{"mg/dl"}, "bun", "urea"),
		),
		mirrorField([]string{"alt", "sgpt"}, Float,
			labelValue(Float, "alt", "alanine aminotransferase", "sgpt"),
			valueLabel(Float, []string{"iu/l", "u/l"}, "alt", "sgpt"),
			labelWindow(Float, "alt", "sgpt"),
		),
		mirrorField([]string{"ast", "sgot"}, Float,
			labelValue(Float, "ast", "aspartate aminotransferase", "sgot"),
			valueLabel(Float, []string{"iu/l", "u/l"}, "ast", "sgot"),
			labelWindow(Float, "ast", "sgot"),
		),
		numField("ggt", Float,
			labelValue(Float, "ggt", "gamma glutamyl transferase"),
			valueLabel(Float, []string{"u/l"}, "ggt"),
		),
		numField("sgot_sgpt_ratio", Float,
			labelValue(Float, "sgot/sgpt", "ast/alt"),
		),
		mirrorField([]string{"bilirubin", "bilirubin_total"}, Float,
			labelValue(Float, "bilirubin total", "total bilirubin", "tbil"),
			valueLabel(Float, []string{"mg/dl"}, "total bilirubin"),
		),
		numField("bilirubin_direct", Float,
			labelValue(Float, "bilirubin direct", "direct bilirubin"),
		),
		numField("bilirubin_indirect", Float,
			labelValue(Float, "bilirubin indirect", "indirect bilirubin"),
		),
		numField("hemoglobin", Float,
			labelValue(Float, "hemoglobin", "hb", "hgb"),
			valueLabel(Float, []string{"g/dl"}, "hemoglobin"),
		),
		numField("wbc", Float,
			labelValue(Float, "wbc", "white blood cells", "leukocytes"),
		),
		numField("rbc", Float,
			labelValue(Float, "rbc", "red blood cells", "erythrocytes"),
		),
		numField("platelets", Float,
			labelValue(Float, "platelets", "plt"),
		),
		numField("bp_systolic", Integer,
			regexMust(`(?i)\b(?:blood pressure|bp)\b[\s:]*(\d+)\s*/\s*\d+`),
		),
		numField("bp_diastolic", Integer,
			regexMust(`(?i)\b(?:blood pressure|bp)\b[\s:]*\d+\s*/\s*(\d+)`),
		),
		numField("heart_rate", Integer,
			labelValue(Integer, "heart rate", "hr", "pulse"),
			valueLabel(Integer, []string{"bpm"}, "heart rate", "pulse"),
		),
		numField("spo2", Integer,
			labelValue(Integer, "spo2", "oxygen saturation"),
		),
		numField("temperature", Float,
			labelValue(Float, "temperature", "temp"),
		),
		numField("bmi", Float,
			labelValue(Float, "bmi", "body mass index"),
			valueLabel(Float, []string{"kg/m2", "kg/m²"}, "bmi"),
		),
		numField("weight", Float,
			labelValue(Float, "weight", "wt"),
			valueLabel(Float, []string{"kg", "lbs"}, "weight"),
		),
		numField("height", Float,
			labelValue(Float, "height", "ht"),
			valueLabel(Float, []string{"cm", "ft"}, "height"),
		),
		numField("age", Integer,
			labelValue(Integer, "age"),
			valueLabel(Integer, []string{"years", "yrs"}, "age"),
		),
		numField("albumin", Float,
			labelValue(Float, "albumin", "alb"),
			valueLabel(Float, []string{"g/dl"}, "albumin"),
		),
		numField("alkaline_phosphatase", Float,
			labelValue(Float, "alkaline phosphatase", "alp"),
			valueLabel(Float, []string{"u/l"}, "alkaline phosphatase"),
		),
		numField("total_protein", Float,
			labelValue(Float, "total protein", "total proteins"),
			valueLabel(Float, []string{"g/dl"}, "total protein"),
		),
		numField("globulin", Float,
			labelValue(Float, "globulin"),
		),
		numField("ag_ratio", Float,
			labelValue(Float, "a:g ratio", "a/g ratio", "ag ratio"),
		),
		numField("gfr", Float,
			labelValue(Float, "gfr", "glomerular filtration rate"),
			valueLabel(Float, []string{"ml/min"}, "gfr"),
		),
		numField("urine_albumin", Float,
			labelValue(Float, "urine albumin", "microalbumin"),
		),
		numField("ejection_fraction", Float,
			labelValue(Float, "ejection fraction", "ef"),
		),
		numField("lv_mass", Float,
			labelValue(Float, "lv mass"),
		),
		numField("stroke_volume", Float,
			labelValue(Float, "stroke volume", "sv"),
		),
		numField("end_diastolic_volume", Float,
			labelValue(Float, "end diastolic volume", "edv"),
		),
		numField("end_systolic_volume", Float,
			labelValue(Float, "end systolic volume", "esv"),
		),
		numField("fractional_shortening", Float,
			labelValue(Float, "fractional shortening", "fs"),
		),
	},
}

// ExtractPanel runs the generic panel vocabulary over the text.
func ExtractPanel(text string) entity.FieldMap {
	return panelSchema.Extract(text)
}
