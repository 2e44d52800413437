// Package validation checks field rules declared in `validate` struct tags
// and reports every violation at once, keyed by the json field path.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern    = regexp.MustCompile(`^0\d{10}$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z-']+$`)
	postCodePattern = regexp.MustCompile(`^[a-zA-Z\d]{6}$`)
)

var messages = map[string]string{
	"required":   "must not be empty",
	"email":      "must be a well-formed email address",
	"max":        "size must be between 1 and 50",
	"personname": "Please use a name without numbers or specials",
	"phone":      "The phone number starts with a 0, contains only digits and is 11 characters in length.",
	"postcode":   "Please use a non-empty alpha-numerical string which is 6 characters in length",
	"future":     "Booking date can not be in the past. Please choose one from the future",
}

var (
	once     sync.Once
	validate *validator.Validate
)

// now is swapped in tests.
var now = time.Now

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(models.DateTime); ok {
				return d.Time
			}
			return nil
		}, models.DateTime{})
		v.RegisterValidation("phone", matches(phonePattern))
		v.RegisterValidation("personname", matches(namePattern))
		v.RegisterValidation("postcode", matches(postCodePattern))
		v.RegisterValidation("future", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && t.After(now())
		})
		validate = v
	})
	return validate
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates s and returns a *apperror.ValidationError listing every
// failing field, or nil.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	reasons := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons[fieldPath(fe.Namespace())] = message(fe.Tag())
	}
	return &apperror.ValidationError{Reasons: reasons}
}

// fieldPath drops the top level struct name: "GuestBooking.customer.email"
// becomes "customer.email".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(tag string) string {
	if m, ok := messages[tag]; ok {
		return m
	}
	return "is invalid"
}
