package psm

import "github.com/go-playground/validator/v10"

// NewValidator returns a validator that understands the psm_model and
// psm_method tags on top of the built-in ones.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("psm_model", func(fl validator.FieldLevel) bool {
		_, err := ParseModel(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("psm_method", func(fl validator.FieldLevel) bool {
		_, err := ParseMethod(fl.Field().String())
		return err == nil
	})
	return v
}
