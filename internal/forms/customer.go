package forms

import (
	"net/url"

	"github.com/NowSalonApp/now-salon-web/internal/formatters"
)

type CustomerForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,emailformat"`
	Phone    string `form:"phone" validate:"required,min=13"`
	Password string `form:"password" validate:"required,min=6"`
}

var customerMessages = map[string]string{
	"name.required":     "Informe o nome",
	"email.required":    "Informe um email",
	"email.emailformat": "Email inválido",
	"phone.required":    "Informe o telefone",
	"phone.min":         "Telefone incompleto",
	"password.required": "Informe a senha",
	"password.min":      "A senha deve ter no mínimo 6 caracteres",
}

func ParseCustomer(values url.Values) (CustomerForm, Errors) {
	form := CustomerForm{
		Name:     trimmed(values, "name"),
		Email:    trimmed(values, "email"),
		Phone:    formatters.Phone(trimmed(values, "phone")),
		Password: raw(values, "password"),
	}
	return form, run(form, customerMessages)
}

// CustomerEditForm accepts an empty password, which means "keep the
// current one"; the update payload then omits the field.
type CustomerEditForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,emailformat"`
	Phone    string `form:"phone" validate:"required,min=13"`
	Password string `form:"password" validate:"omitempty,min=6"`
}

func ParseCustomerEdit(values url.Values) (CustomerEditForm, Errors) {
	form := CustomerEditForm{
		Name:     trimmed(values, "name"),
		Email:    trimmed(values, "email"),
		Phone:    formatters.Phone(trimmed(values, "phone")),
		Password: raw(values, "password"),
	}
	return form, run(form, customerMessages)
}
