package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/forms"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/session"
)

type AuthHandler struct {
	api      *backend.Client
	resolver *session.Resolver
	gate     *gate.Gate
	log      *zap.Logger
}

func NewAuthHandler(api *backend.Client, resolver *session.Resolver, g *gate.Gate, log *zap.Logger) *AuthHandler {
	return &AuthHandler{api: api, resolver: resolver, gate: g, log: log}
}

// --------- Home ---------

func (h *AuthHandler) HomePage(c *gin.Context) {
	s := h.gate.Resolve(c)

	// Home belongs to the customer side; a signed-in employee lands
	// on the dashboard instead.
	if s.IsEmployeeAuthenticated() && !s.IsCustomerAuthenticated() {
		c.Redirect(http.StatusFound, "/employee")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":                   "Home",
		"IsCustomerAuthenticated": s.IsCustomerAuthenticated(),
		"Customer":                s.Customer,
	})
}

// --------- Customer login ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":  "Entrar",
		"Errors": forms.Errors{},
	})
}

func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	form, errs := forms.ParseCustomerLogin(postForm(c))
	if errs.Any() {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":  "Entrar",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	if msg := h.resolver.SignInCustomer(c, form.Email, form.Password); msg != "" {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":        "Entrar",
			"Form":         form,
			"Errors":       forms.Errors{},
			"ErrorMessage": msg,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// --------- Sign up ---------

func (h *AuthHandler) SignUpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":  "Cadastre-se",
		"Errors": forms.Errors{},
	})
}

func (h *AuthHandler) SignUpSubmit(c *gin.Context) {
	form, errs := forms.ParseSignUp(postForm(c))
	if errs.Any() {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Title":  "Cadastre-se",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	err := h.api.CreateCustomer(c.Request.Context(), backend.CustomerPayload{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		message := "Erro ocorrido durante cadastro: " + err.Error()
		if backend.IsStatus(err, http.StatusConflict) {
			message = "Email já cadastrado, por favor insira um novo email"
		} else if _, ok := err.(*backend.StatusError); ok {
			message = "Ocorreu algum erro durante o cadastro"
		}

		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Title":        "Cadastre-se",
			"Form":         form,
			"Errors":       forms.Errors{},
			"ErrorMessage": message,
		})
		return
	}

	// Auto-login right after a successful registration.
	if msg := h.resolver.SignInCustomer(c, form.Email, form.Password); msg != "" {
		h.log.Warn("login automático após cadastro falhou", zap.String("message", msg))
	}

	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":          "Cadastre-se",
		"Errors":         forms.Errors{},
		"SuccessMessage": "Usuário cadastrado!",
		"RefreshSeconds": 2,
		"RefreshTo":      "/",
	})
}

// --------- Employee portal ---------

func (h *AuthHandler) PortalPage(c *gin.Context) {
	c.HTML(http.StatusOK, "portal.html", gin.H{
		"Title":  "Portal funcionários",
		"Errors": forms.Errors{},
	})
}

func (h *AuthHandler) PortalSubmit(c *gin.Context) {
	form, errs := forms.ParseEmployeeLogin(postForm(c))
	if errs.Any() {
		c.HTML(http.StatusOK, "portal.html", gin.H{
			"Title":  "Portal funcionários",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	if msg := h.resolver.SignInEmployee(c, form.Registration, form.Password); msg != "" {
		c.HTML(http.StatusOK, "portal.html", gin.H{
			"Title":        "Portal funcionários",
			"Form":         form,
			"Errors":       forms.Errors{},
			"ErrorMessage": msg,
		})
		return
	}

	c.Redirect(http.StatusFound, "/employee")
}

// --------- Logout ---------

func (h *AuthHandler) Logout(c *gin.Context) {
	h.resolver.Logout(c)
	c.Redirect(http.StatusFound, "/")
}
