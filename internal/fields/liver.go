package fields

import (
	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

// liverSchema targets the liver-disease model inputs. The nominal schema
// size is 12; indirect_bilirubin and globulin are optional extras the
// prediction API accepts, so they are recognized but do not change the
// confidence denominator. The misspelled keys (alkaline_phosphotase,
// total_protiens) are the model's own input names.
var liverSchema = &Schema{
	Category: constants.Liver,
	Fields: []FieldSpec{
		numField("age", Integer,
			labelValue(Integer, "age"),
			valueLabel(Integer, []string{"years", "yrs"}, "age"),
		),
		enumField("gender",
			enumCase(entity.Enum("Male"), "male"),
			enumCase(entity.Enum("Female"), "female"),
		),
		numField("total_bilirubin", Float,
			labelValue(Float, "total bilirubin", "bilirubin total", "tb"),
			valueLabel(Float, []string{"mg/dl"}, "total bilirubin"),
		),
		numField("direct_bilirubin", Float,
			labelValue(Float, "direct bilirubin", "bilirubin direct", "db"),
			valueLabel(Float, []string{"mg/dl"}, "direct bilirubin"),
		),
		numField("indirect_bilirubin", Float,
			labelValue(Float, "indirect bilirubin", "bilirubin indirect", "ib"),
		),
		numField("alkaline_phosphotase", Integer,
			labelValue(Integer, "alkaline phosphatase", "alp"),
			valueLabel(Integer, []string{"u/l", "iu/l"}, "alkaline phosphatase", "alp"),
		),
		numField("alamine_aminotransferase", Integer,
			labelValue(Integer, "alt", "alanine aminotransferase", "sgpt"),
			valueLabel(Integer, []string{"u/l", "iu/l"}, "alt", "sgpt"),
		),
		numField("aspartate_aminotransferase", Integer,
			labelValue(Integer, "ast", "aspartate aminotransferase", "sgot"),
			valueLabel(Integer, []string{"u/l", "iu/l"}, "ast", "sgot"),
		),
		numField("sgot_sgpt_ratio", Float,
			labelValue(Float, "sgot/sgpt ratio", "sgot sgpt ratio", "ast/alt ratio"),
		),
		numField("ggt", Integer,
			labelValue(Integer, "ggt", "gamma glutamyl transferase"),
			valueLabel(Integer, []string{"u/l"}, "ggt"),
		),
		numField("total_protiens", Float,
			labelValue(Float, "total proteins", "total protein", "tp"),
			valueLabel(Float, []string{"g/dl"}, "total protein", "total proteins"),
		),
		numField("albumin", Float,
			labelValue(Float, "albumin"),
			valueLabel(Float, []string{"g/dl"}, "albumin"),
		),
		numField("globulin", Float,
			labelValue(Float, "globulin"),
		),
		numField("albumin_and_globulin_ratio", Float,
			labelValue(Float, "albumin globulin ratio", "albumin/globulin ratio", "a/g ratio", "a:g ratio", "a/g"),
		),
	},
}
