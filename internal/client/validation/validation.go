// Package validation checks CLI form input before any API call is made.
// Forms are plain structs with `validate` tags; a failed check is reported
// as Errors, one user-facing message per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/go-playground/validator/v10"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	otpRe   = regexp.MustCompile(`^\d{6}$`)
)

// Errors maps a form field (its json name) to the message shown for it.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, e[f])
	}
	return strings.Join(parts, "; ")
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	mustRegister(v, "email_addr", matches(emailRe))
	mustRegister(v, "phone", matches(phoneRe))
	mustRegister(v, "otp", matches(otpRe))
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.JobCategories, fl.Field().String())
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates form. It returns nil, Errors, or an error for a value
// that is not a validatable struct.
func (v *Validator) Struct(form any) error {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := Errors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

var labels = map[string]string{
	"email":            "Email",
	"password":         "Password",
	"new_password":     "Password",
	"confirm_password": "Password confirmation",
	"first_name":       "First name",
	"last_name":        "Last name",
	"phone_number":     "Phone number",
	"otp":              "Verification code",
	"title":            "Title",
	"description":      "Description",
	"category":         "Category",
	"location":         "Location",
	"budget":           "Budget",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "notblank":
		if field == "confirm_password" {
			return "Please confirm your password"
		}
		return label(field) + " is required"
	case "email_addr":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "otp":
		return "Verification code must be 6 digits"
	case "eqfield":
		return "Passwords do not match"
	case "category":
		return "Please choose a valid category"
	case "min":
		if field == "password" || field == "new_password" {
			return "Password must be at least " + fe.Param() + " characters long"
		}
		return fmt.Sprintf("%s must be at least %s characters", label(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label(field), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label(field), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label(field), fe.Param())
	}
	return label(field) + " is invalid"
}
