package forms

import (
	"net/url"
	"strconv"

	"github.com/NowSalonApp/now-salon-web/internal/formatters"
)

type EmployeeForm struct {
	Name        string `form:"name" validate:"required"`
	Phone       string `form:"phone" validate:"required,min=13"`
	Role        string `form:"role" validate:"required"`
	AccessLevel string `form:"accessLevel" validate:"required,oneof=Funcionario Admin"`
	Password    string `form:"password" validate:"required,min=6"`

	// Jobs is the explicit selected-service id set from the
	// "Serviços realizados" checkboxes.
	Jobs []int `form:"jobs"`
}

var employeeMessages = map[string]string{
	"name.required":        "Informe o nome",
	"phone.required":       "Informe o seu telefone",
	"phone.min":            "Telefone incompleto",
	"role.required":        "Informe o cargo",
	"accessLevel.required": "Informe o nível de acesso",
	"accessLevel.oneof":    "Nível de acesso inválido",
	"password.required":    "Informe a sua senha",
	"password.min":         "A senha deve ter no mínimo 6 caracteres",
}

func ParseEmployee(values url.Values) (EmployeeForm, Errors) {
	form := EmployeeForm{
		Name:        trimmed(values, "name"),
		Phone:       formatters.Phone(trimmed(values, "phone")),
		Role:        trimmed(values, "role"),
		AccessLevel: trimmed(values, "accessLevel"),
		Password:    raw(values, "password"),
		Jobs:        parseJobIDs(values),
	}
	return form, run(form, employeeMessages)
}

type EmployeeEditForm struct {
	Name        string `form:"name" validate:"required"`
	Phone       string `form:"phone" validate:"required,min=13"`
	Role        string `form:"role" validate:"required"`
	AccessLevel string `form:"accessLevel" validate:"required,oneof=Funcionario Admin"`
	Password    string `form:"password" validate:"omitempty,min=6"`
	Jobs        []int  `form:"jobs"`
}

func ParseEmployeeEdit(values url.Values) (EmployeeEditForm, Errors) {
	form := EmployeeEditForm{
		Name:        trimmed(values, "name"),
		Phone:       formatters.Phone(trimmed(values, "phone")),
		Role:        trimmed(values, "role"),
		AccessLevel: trimmed(values, "accessLevel"),
		Password:    raw(values, "password"),
		Jobs:        parseJobIDs(values),
	}
	return form, run(form, employeeMessages)
}

func parseJobIDs(values url.Values) []int {
	var ids []int
	for _, v := range values["jobs"] {
		if id, err := strconv.Atoi(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
