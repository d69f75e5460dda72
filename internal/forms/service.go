package forms

import (
	"net/url"
	"strconv"
)

// The minimum price is a business rule of the salon, not re-derived
// anywhere else.
const minServicePrice = 6

const msgServicePrice = "O preço deve ser maior que 5"

type ServiceForm struct {
	Name          string `form:"name" validate:"required"`
	Description   string `form:"description" validate:"required"`
	EstimatedTime string `form:"estimatedTime" validate:"required"`
	Price         float64
	Status        string `form:"status" validate:"required,oneof=Ativo Desativado"`
}

var serviceMessages = map[string]string{
	"name.required":          "Informe o nome do serviço",
	"description.required":   "Informe a descrição do serviço",
	"estimatedTime.required": "Informe a duração estimada do serviço!",
	"status.required":        "Informe o status do serviço",
	"status.oneof":           "Status inválido",
}

// ParseService coerces the price from its raw string; anything that
// is not a number at least 6 fails with the price-floor message.
func ParseService(values url.Values) (ServiceForm, Errors) {
	form := ServiceForm{
		Name:          trimmed(values, "name"),
		Description:   trimmed(values, "description"),
		EstimatedTime: trimmed(values, "estimatedTime"),
		Status:        trimmed(values, "status"),
	}

	errs := run(form, serviceMessages)

	price, err := strconv.ParseFloat(trimmed(values, "price"), 64)
	if err != nil || price < minServicePrice {
		errs["price"] = msgServicePrice
	} else {
		form.Price = price
	}

	return form, errs
}
