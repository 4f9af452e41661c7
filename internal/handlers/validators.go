package handlers

import (
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs the binding validations shared by the
// write-request DTOs on gin's validator engine. Safe to call more than once.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// amountstr accepts a decimal string with either a dot or comma
	// separator; whether zero or negative values pass is decided per
	// operation in the service layer.
	_ = v.RegisterValidation("amountstr", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseAmount(fl.Field().String())
		return err == nil
	})
}
