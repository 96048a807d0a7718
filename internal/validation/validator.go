package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// Validator wraps the validator instance with the domain tags registered:
// herbpatch, compost, anima, diary, herb, skill, osrsname and profilename.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once

	// Display names are letters, digits, spaces, underscores and hyphens.
	osrsNamePattern    = regexp.MustCompile(`^[A-Za-z0-9 _-]{1,12}$`)
	profileNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)
)

// Get returns the shared validator
func Get() *Validator {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New creates a validator with the domain tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("herbpatch", enumValidator(func(i int) bool { return domain.HerbPatch(i).IsValid() }))
	_ = v.RegisterValidation("compost", enumValidator(func(i int) bool { return domain.Compost(i).IsValid() }))
	_ = v.RegisterValidation("anima", enumValidator(func(i int) bool { return domain.AnimaPlant(i).IsValid() }))
	_ = v.RegisterValidation("diary", enumValidator(func(i int) bool { return domain.DiaryLevel(i).IsValid() }))
	_ = v.RegisterValidation("herb", enumValidator(func(i int) bool { return domain.Herb(i).IsValid() }))
	_ = v.RegisterValidation("skill", enumValidator(func(i int) bool { return domain.Skill(i).IsValid() }))
	_ = v.RegisterValidation("osrsname", patternValidator(osrsNamePattern))
	_ = v.RegisterValidation("profilename", patternValidator(profileNamePattern))

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag, e.g. "osrsname"
func (v *Validator) ValidateVar(field any, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a field to message
// map. This keeps internal struct names out of responses.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "unique":
			errs[field] = "Must not contain duplicates"
		case "herbpatch":
			errs[field] = "Unknown herb patch"
		case "compost":
			errs[field] = "Unknown compost"
		case "anima":
			errs[field] = "Unknown anima plant"
		case "diary":
			errs[field] = "Unknown diary level"
		case "herb":
			errs[field] = "Unknown herb"
		case "skill":
			errs[field] = "Unknown skill"
		case "osrsname":
			errs[field] = "Must be 1-12 letters, digits, spaces, hyphens or underscores"
		case "profilename":
			errs[field] = "Must be 1-32 lowercase letters, digits, hyphens or underscores"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// FieldErrors is a validation failure with a message per field. It wraps
// domain.ErrInvalidConfig.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return domain.ErrMsgInvalidConfig + ": " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Unwrap() error { return domain.ErrInvalidConfig }

// Error converts a validator error into *FieldErrors. Nil stays nil.
func Error(err error) error {
	if err == nil {
		return nil
	}
	return &FieldErrors{Fields: FormatValidationError(err)}
}

// fieldPath is the namespace without the top-level struct name, e.g.
// "config.patches[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return strings.ToLower(e.Field())
}

func enumValidator(valid func(int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return valid(int(fl.Field().Int()))
		default:
			return false
		}
	}
}

func patternValidator(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
