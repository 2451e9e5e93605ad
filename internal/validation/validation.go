package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// category is one or two alphabetic words separated by a single space.
	categoryPattern = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)?$`)
	alphaPattern    = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Register installs the custom field validators on gin's binding engine.
// Call once per process before building a router.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return categoryPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("alphaname", func(fl validator.FieldLevel) bool {
		return alphaPattern.MatchString(fl.Field().String())
	})
}
