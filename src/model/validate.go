package model

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// metricsValidate is shared by every validation call. validator.Validate
// caches struct metadata and is safe for concurrent use.
var metricsValidate *validator.Validate

func init() {
	metricsValidate = validator.New()
	metricsValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = metricsValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and infinities on float fields
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Validate checks every field of the input and returns an
// *InvalidMetricsError listing all violations, or nil.
func (m MetricsInput) Validate() error {
	err := metricsValidate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &InvalidMetricsError{Violations: []FieldViolation{{Field: "metrics", Rule: err.Error()}}}
	}

	out := &InvalidMetricsError{Violations: make([]FieldViolation, 0, len(verrs))}
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out.Violations = append(out.Violations, FieldViolation{
			Field: fe.Field(),
			Rule:  rule,
			Value: fe.Value(),
		})
	}
	return out
}
