package main

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,8}[A-Za-z0-9]$`)

// registerValidators adds the custom binding rules to gin's validator engine.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("postalcode", validatePostalCode)
}

// validatePostalCode accepts 3 to 10 letters, digits, spaces and hyphens,
// starting and ending with a letter or digit.
func validatePostalCode(fl validator.FieldLevel) bool {
	return postalCodePattern.MatchString(fl.Field().String())
}
