package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

// RegisterValidations installs the domain enum validations referenced by the
// binding tags in this package. Safe to call more than once.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return model.Gender(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("designtype", func(fl validator.FieldLevel) bool {
		return model.DesignType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("ordergame", func(fl validator.FieldLevel) bool {
		return model.KnownGame(fl.Field().String())
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return model.OrderStatus(fl.Field().String()).Valid()
	})
}
