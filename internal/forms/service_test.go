package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceValues() url.Values {
	return url.Values{
		"name":          {"Corte de cabelo"},
		"description":   {"Corte masculino"},
		"estimatedTime": {"00:30"},
		"price":         {"25.5"},
		"status":        {"Ativo"},
	}
}

func TestParseService(t *testing.T) {
	form, errs := ParseService(serviceValues())

	require.False(t, errs.Any())
	assert.Equal(t, "Corte de cabelo", form.Name)
	assert.Equal(t, 25.5, form.Price)
}

func TestParseServicePriceFloor(t *testing.T) {
	values := serviceValues()

	values.Set("price", "5")
	_, errs := ParseService(values)
	assert.Equal(t, "O preço deve ser maior que 5", errs.Get("price"))

	values.Set("price", "abc")
	_, errs = ParseService(values)
	assert.Equal(t, "O preço deve ser maior que 5", errs.Get("price"))

	values.Set("price", "6")
	form, errs := ParseService(values)
	assert.False(t, errs.Any())
	assert.Equal(t, 6.0, form.Price)
}

func TestParseServiceRequiredFields(t *testing.T) {
	values := serviceValues()
	values.Set("name", "")
	values.Set("estimatedTime", "  ")

	_, errs := ParseService(values)

	assert.Equal(t, "Informe o nome do serviço", errs.Get("name"))
	assert.Equal(t, "Informe a duração estimada do serviço!", errs.Get("estimatedTime"))
}
