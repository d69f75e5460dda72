package forms

import (
	"net/url"

	"github.com/NowSalonApp/now-salon-web/internal/formatters"
)

type CustomerLoginForm struct {
	Email    string `form:"email" validate:"required,emailformat"`
	Password string `form:"password" validate:"required,min=6"`
}

var customerLoginMessages = map[string]string{
	"email.required":    "Informe seu email",
	"email.emailformat": "Email inválido",
	"password.required": "Informe a sua senha",
	"password.min":      "A senha tem no mínimo 6 caracteres",
}

func ParseCustomerLogin(values url.Values) (CustomerLoginForm, Errors) {
	form := CustomerLoginForm{
		Email:    trimmed(values, "email"),
		Password: raw(values, "password"),
	}
	return form, run(form, customerLoginMessages)
}

type EmployeeLoginForm struct {
	Registration string `form:"registration" validate:"required,min=4"`
	Password     string `form:"password" validate:"required,min=6"`
}

var employeeLoginMessages = map[string]string{
	"registration.required": "Informe sua matrícula",
	"registration.min":      "Matrícula inválida",
	"password.required":     "Informe a sua senha",
	"password.min":          "A senha tem no mínimo 6 caracteres",
}

// ParseEmployeeLogin normalizes the registration to digits before
// validating, mirroring the input formatter.
func ParseEmployeeLogin(values url.Values) (EmployeeLoginForm, Errors) {
	form := EmployeeLoginForm{
		Registration: formatters.Registration(trimmed(values, "registration")),
		Password:     raw(values, "password"),
	}
	return form, run(form, employeeLoginMessages)
}

type SignUpForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,emailformat"`
	Phone    string `form:"phone" validate:"required,min=13"`
	Password string `form:"password" validate:"required,min=6"`
}

var signUpMessages = map[string]string{
	"name.required":     "Informe o seu nome",
	"email.required":    "Informe um email",
	"email.emailformat": "Email inválido",
	"phone.required":    "Informe o seu telefone",
	"phone.min":         "Telefone incompleto",
	"password.required": "Informe a sua senha",
	"password.min":      "A senha deve ter no mínimo 6 caracteres",
}

func ParseSignUp(values url.Values) (SignUpForm, Errors) {
	form := SignUpForm{
		Name:     trimmed(values, "name"),
		Email:    trimmed(values, "email"),
		Phone:    formatters.Phone(trimmed(values, "phone")),
		Password: raw(values, "password"),
	}
	return form, run(form, signUpMessages)
}
