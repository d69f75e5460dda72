package forms

import (
	"net/url"
	"strings"

	"github.com/NowSalonApp/now-salon-web/internal/formatters"
)

type SalonForm struct {
	Name         string `form:"name" validate:"required"`
	Phone        string `form:"phone" validate:"required,min=13"`
	DaysWeekOpen string `form:"daysWeekOpen"`
	TimeOpen     string `form:"timeOpen" validate:"required"`
	TimeClose    string `form:"timeClose" validate:"required"`
	EmailContact string `form:"emailContact" validate:"required,emailformat"`
	Status       string `form:"status" validate:"required"`
	Address      string `form:"address" validate:"required"`
	Neighborhood string `form:"neighborhood" validate:"required"`
	CityState    string `form:"cityState" validate:"required"`
}

var salonMessages = map[string]string{
	"name.required":         "Informe o nome do estabelecimento",
	"phone.required":        "Informe o telefone de contato",
	"phone.min":             "Telefone incompleto",
	"timeOpen.required":     "Informe a hora de abertura",
	"timeClose.required":    "Informe a hora de fechamento",
	"emailContact.required": "Informe o email de contato",
	"emailContact.emailformat": "Email inválido",
	"status.required":       "Informe o status",
	"address.required":      "Informe a rua e o número do salão",
	"neighborhood.required": "Informe o bairro do salão",
	"cityState.required":    "Informe a cidade e estado do estabelecimento",
}

// ParseSalon joins the open-day checkboxes into the backend's
// comma-separated string ("Segunda, Terça").
func ParseSalon(values url.Values) (SalonForm, Errors) {
	form := SalonForm{
		Name:         trimmed(values, "name"),
		Phone:        formatters.Phone(trimmed(values, "phone")),
		DaysWeekOpen: strings.Join(values["daysWeekOpen"], ", "),
		TimeOpen:     trimmed(values, "timeOpen"),
		TimeClose:    trimmed(values, "timeClose"),
		EmailContact: trimmed(values, "emailContact"),
		Status:       trimmed(values, "status"),
		Address:      trimmed(values, "address"),
		Neighborhood: trimmed(values, "neighborhood"),
		CityState:    trimmed(values, "cityState"),
	}
	return form, run(form, salonMessages)
}
