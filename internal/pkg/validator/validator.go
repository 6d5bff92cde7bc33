package validator

import (
	stdErrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inspection-map/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры.
// Ошибки валидации превращаются в ErrInvalidRequest с перечнем полей.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stdErrors.As(err, &validationErrs) {
		return errors.ErrInvalidRequest
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}

	return errors.ErrInvalidRequest.WithDetails(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
