package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerLogin(t *testing.T) {
	form, errs := ParseCustomerLogin(url.Values{
		"email":    {"  joao@exemplo.com  "},
		"password": {"segredo"},
	})

	require.False(t, errs.Any())
	assert.Equal(t, "joao@exemplo.com", form.Email)
	assert.Equal(t, "segredo", form.Password)
}

func TestParseCustomerLoginMissing(t *testing.T) {
	_, errs := ParseCustomerLogin(url.Values{})

	assert.Equal(t, "Informe seu email", errs.Get("email"))
	assert.Equal(t, "Informe a sua senha", errs.Get("password"))
}

func TestParseEmployeeLoginNormalizesRegistration(t *testing.T) {
	form, errs := ParseEmployeeLogin(url.Values{
		"registration": {"10-01"},
		"password":     {"segredo"},
	})

	require.False(t, errs.Any())
	assert.Equal(t, "1001", form.Registration)
}

func TestParseEmployeeLoginShortRegistration(t *testing.T) {
	_, errs := ParseEmployeeLogin(url.Values{
		"registration": {"12"},
		"password":     {"segredo"},
	})

	assert.Equal(t, "Matrícula inválida", errs.Get("registration"))
}

func TestParseSignUp(t *testing.T) {
	form, errs := ParseSignUp(url.Values{
		"name":     {"João"},
		"email":    {"joao@exemplo.com"},
		"phone":    {"11987654321"},
		"password": {"segredo"},
	})

	require.False(t, errs.Any())
	assert.Equal(t, "11 98765-4321", form.Phone)
}

func TestParseSignUpShortPhone(t *testing.T) {
	_, errs := ParseSignUp(url.Values{
		"name":     {"João"},
		"email":    {"joao@exemplo.com"},
		"phone":    {"119876"},
		"password": {"segredo"},
	})

	assert.Equal(t, "Telefone incompleto", errs.Get("phone"))
}
