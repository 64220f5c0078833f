package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks validate tags and turns the first failure into a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	first := verrs[0]
	switch first.Tag() {
	case "required":
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Missing %s.", first.Field()))
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid %s.", first.Field()))
	}
}
