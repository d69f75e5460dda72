package session

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/models"
)

const (
	CustomerCookie = "nowsalon.customer-token"
	EmployeeCookie = "nowsalon.employee-token"
)

const (
	customerTokenTTL = 3 * time.Hour
	employeeTokenTTL = 5 * time.Hour
)

const (
	MsgCustomerLoginFailed = "O login falhou! Por favor confira sua senha ou o seu email."
	MsgEmployeeLoginFailed = "O login falhou! Confira sua matrícula ou senha"
)

type Resolver struct {
	api *backend.Client
	log *zap.Logger
}

func NewResolver(api *backend.Client, log *zap.Logger) *Resolver {
	return &Resolver{api: api, log: log}
}

// ResolveCustomer exchanges a stored token for a customer profile.
// Any failure (non-200, transport error) downgrades to an anonymous
// session: it logs and returns nil, never an error.
func (r *Resolver) ResolveCustomer(ctx context.Context, token string) *models.CustomerProfile {
	if token == "" {
		return nil
	}

	profile, err := r.api.AuthCustomer(ctx, token)
	if err != nil {
		r.log.Warn("falha na autenticação do cliente", zap.Error(err))
		return nil
	}
	return profile
}

func (r *Resolver) ResolveEmployee(ctx context.Context, token string) *models.EmployeeProfile {
	if token == "" {
		return nil
	}

	profile, err := r.api.AuthEmployee(ctx, token)
	if err != nil {
		r.log.Warn("falha na autenticação do funcionário", zap.Error(err))
		return nil
	}
	return profile
}

// SignInCustomer returns the user-facing error message, or "" on
// success after storing the token cookie for three hours.
func (r *Resolver) SignInCustomer(c *gin.Context, email, password string) string {
	login, err := r.api.LoginCustomer(c.Request.Context(), email, password)
	if err != nil {
		if _, ok := err.(*backend.StatusError); ok {
			return MsgCustomerLoginFailed
		}
		return "Ocorreu algum erro inesperado no login: " + err.Error()
	}

	c.SetCookie(CustomerCookie, login.IDToken, int(customerTokenTTL.Seconds()), "/", "", false, false)
	return ""
}

// SignInEmployee coerces the registration to a number before calling
// the backend; the employee cookie lives for five hours.
func (r *Resolver) SignInEmployee(c *gin.Context, registration, password string) string {
	reg, err := strconv.Atoi(registration)
	if err != nil {
		return MsgEmployeeLoginFailed
	}

	login, err := r.api.LoginEmployee(c.Request.Context(), reg, password)
	if err != nil {
		if _, ok := err.(*backend.StatusError); ok {
			return MsgEmployeeLoginFailed
		}
		return "Ocorreu algum erro inesperado no login: " + err.Error()
	}

	c.SetCookie(EmployeeCookie, login.IDToken, int(employeeTokenTTL.Seconds()), "/", "", false, false)
	return ""
}

// Logout clears both identity cookies.
func (r *Resolver) Logout(c *gin.Context) {
	c.SetCookie(CustomerCookie, "", -1, "/", "", false, false)
	c.SetCookie(EmployeeCookie, "", -1, "/", "", false, false)
}
