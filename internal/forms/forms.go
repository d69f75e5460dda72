// Package forms validates submitted form values and returns typed
// data plus field-level error messages, never panics or exceptions.
package forms

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps form field names to user-facing messages.
type Errors map[string]string

func (e Errors) Any() bool { return len(e) > 0 }

func (e Errors) Get(field string) string { return e[field] }

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9]+@[a-zA-Z0-9]+\.[A-Za-z]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})

	_ = v.RegisterValidation("emailformat", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})

	return v
}

// run validates the struct and translates each failed rule through
// the form's "field.tag" message table. Only the first failure per
// field is reported.
func run(form any, messages map[string]string) Errors {
	err := validate.Struct(form)
	if err == nil {
		return Errors{}
	}

	out := Errors{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}

		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else {
			out[field] = "Campo inválido"
		}
	}
	return out
}

func trimmed(values map[string][]string, key string) string {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func raw(values map[string][]string, key string) string {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}
