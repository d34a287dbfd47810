package roadmap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names so errors match the prompt schema.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("nonempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = validate.RegisterValidation("answer_in_options", func(fl validator.FieldLevel) bool {
		switch q := fl.Parent().Interface().(type) {
		case QuizQuestion:
			return q.CorrectIndex() >= 0
		case *QuizQuestion:
			return q.CorrectIndex() >= 0
		default:
			return false
		}
	})
}

// ValidationError describes one schema violation.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationResult contains the result of schema validation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Validate checks the structural conventions the prompt asks for but the
// permissive path does not require: at least one module, titled modules,
// non-empty questions with options, and a correct_answer naming an option.
func (r *Roadmap) Validate() ValidationResult {
	if r == nil {
		return ValidationResult{Errors: []ValidationError{{Field: "roadmap", Tag: "required", Message: "roadmap is required"}}}
	}

	err := validate.Struct(r)
	if err == nil {
		return ValidationResult{Valid: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationResult{Errors: []ValidationError{{Field: "roadmap", Tag: "invalid", Message: err.Error()}}}
	}

	result := ValidationResult{}
	for _, fe := range verrs {
		result.Errors = append(result.Errors, ValidationError{
			Field:   trimNamespace(fe.Namespace()),
			Tag:     fe.Tag(),
			Message: formatValidationError(fe),
		})
	}
	return result
}

// ErrorSummary returns a single string summarizing all validation errors
func (r ValidationResult) ErrorSummary() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "; ")
}

func formatValidationError(fe validator.FieldError) string {
	field := trimNamespace(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "nonempty":
		return fmt.Sprintf("%s cannot be empty or whitespace", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s items", field, fe.Param())
	case "answer_in_options":
		return fmt.Sprintf("%s must equal one of the options", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// trimNamespace drops the root struct name: "Roadmap.modules[0].title" ->
// "modules[0].title".
func trimNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
