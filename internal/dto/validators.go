package dto

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxAccountSegments = 3

// accountPath validates the colon-separated account form, e.g.
// "Assets:Receivable": one to three non-empty segments.
func accountPath(fl validator.FieldLevel) bool {
	segments := strings.Split(fl.Field().String(), ":")
	if len(segments) > maxAccountSegments {
		return false
	}
	for _, segment := range segments {
		if segment == "" {
			return false
		}
	}
	return true
}

// RegisterValidators installs the custom binding validations. Must be called
// once before the router starts serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("account_path", accountPath)
}
