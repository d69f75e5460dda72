package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/forms"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/models"
)

// WeekDays drives the open-days checkbox set, in salon display order.
var WeekDays = []string{
	"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo",
}

type SalonHandler struct {
	api  *backend.Client
	gate *gate.Gate
	log  *zap.Logger
}

func NewSalonHandler(api *backend.Client, g *gate.Gate, log *zap.Logger) *SalonHandler {
	return &SalonHandler{api: api, gate: g, log: log}
}

func (h *SalonHandler) Page(c *gin.Context) {
	s := h.gate.Resolve(c)

	salon, err := h.api.GetSalon(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados do estabelecimento", zap.Error(err))
		salon = &models.Salon{}
	}

	c.HTML(http.StatusOK, "salon.html", gin.H{
		"Title":       "Estabelecimento",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Dados do estabelecimento",
		"Errors":      forms.Errors{},
		"WeekDays":    WeekDays,
		"CheckedDays": checkedDays(salon.DaysWeekOpen),
		"Form": forms.SalonForm{
			Name:         salon.Name,
			Phone:        salon.Phone,
			DaysWeekOpen: salon.DaysWeekOpen,
			TimeOpen:     salon.TimeOpen,
			TimeClose:    salon.TimeClose,
			EmailContact: salon.EmailContact,
			Status:       salon.Status,
			Address:      salon.Address,
			Neighborhood: salon.Neighborhood,
			CityState:    salon.CityState,
		},
	})
}

func (h *SalonHandler) Submit(c *gin.Context) {
	s := h.gate.Resolve(c)

	form, errs := forms.ParseSalon(postForm(c))

	data := gin.H{
		"Title":       "Estabelecimento",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Dados do estabelecimento",
		"Form":        form,
		"Errors":      errs,
		"WeekDays":    WeekDays,
		"CheckedDays": checkedDays(form.DaysWeekOpen),
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "salon.html", data)
		return
	}

	err := h.api.UpdateSalon(c.Request.Context(), models.Salon{
		Name:         form.Name,
		Phone:        form.Phone,
		DaysWeekOpen: form.DaysWeekOpen,
		TimeOpen:     form.TimeOpen,
		TimeClose:    form.TimeClose,
		EmailContact: form.EmailContact,
		Status:       form.Status,
		Address:      form.Address,
		Neighborhood: form.Neighborhood,
		CityState:    form.CityState,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro na alteração dos dados do estabelecimento", err)
		c.HTML(http.StatusOK, "salon.html", data)
		return
	}

	c.Redirect(http.StatusFound, "/employee/salon")
}

func checkedDays(daysWeekOpen string) map[string]bool {
	checked := map[string]bool{}
	for _, day := range strings.Split(daysWeekOpen, ", ") {
		if day != "" {
			checked[day] = true
		}
	}
	return checked
}
