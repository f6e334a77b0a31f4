// Package validation adapts go-playground/validator to the RequestValidator
// port. Rules are declared as struct tags on command types; the adapter turns
// every violation into a user-facing message keyed by the field's wire name.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/results"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PlaygroundValidator implements ports.RequestValidator.
//
// Registered extensions:
//   - decimal.Decimal fields are validated through their float64 value, so
//     numeric tags like gt=0 apply to them
//   - the orderstatus tag accepts exactly the valid order status names
//   - reported field names come from json tags, matching the wire format
type PlaygroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundValidator creates a request validator with all extensions registered.
func NewPlaygroundValidator() *PlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	//nolint:errcheck // registration only fails for nil functions
	v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		_, err := order.ParseStatus(fl.Field().String())
		return err == nil
	})

	return &PlaygroundValidator{validate: v}
}

// ValidateStruct checks request against its declared tags and returns one
// ValidationError per violated rule. An empty slice means the request is valid.
func (v *PlaygroundValidator) ValidateStruct(request any) []results.ValidationError {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return []results.ValidationError{{Message: "Invalid request payload."}}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []results.ValidationError{{Message: "Invalid request payload."}}
	}

	violations := make([]results.ValidationError, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, results.ValidationError{
			Message:    messageFor(fieldErr),
			FieldNames: []string{fieldErr.Field()},
		})
	}
	return violations
}

// messageFor maps a violated tag to its user-facing message. Numeric kinds
// matter for gt: integer identifiers and decimal amounts phrase the rule
// differently.
func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return humanize(fieldErr.StructField()) + " is required."
	case "gt":
		switch fieldErr.Kind() {
		case reflect.Float32, reflect.Float64:
			return humanize(fieldErr.StructField()) + " must be greater than zero."
		default:
			return humanize(fieldErr.StructField()) + " must be a positive integer."
		}
	case "orderstatus":
		return "Invalid order status value."
	default:
		return humanize(fieldErr.StructField()) + " is invalid."
	}
}

// humanize turns a Go field name into a readable label: "CustomerID" becomes
// "Customer ID", "TotalAmount" becomes "Total amount". Initialisms stay upper.
func humanize(fieldName string) string {
	words := splitCamelCase(fieldName)
	for i, word := range words {
		if i == 0 || word == strings.ToUpper(word) {
			continue
		}
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, " ")
}

func splitCamelCase(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0

	for i := 1; i < len(runes); i++ {
		prevUpper := unicode.IsUpper(runes[i-1])
		currUpper := unicode.IsUpper(runes[i])

		boundary := false
		switch {
		case currUpper && !prevUpper:
			boundary = true
		case !currUpper && prevUpper && i-start > 1:
			// End of an initialism run, e.g. the "F" in "IDFor".
			boundary = true
			i--
		}

		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}

	return append(words, string(runes[start:]))
}
