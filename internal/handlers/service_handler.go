package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/forms"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/listfilter"
)

type ServiceHandler struct {
	api  *backend.Client
	gate *gate.Gate
	log  *zap.Logger
}

func NewServiceHandler(api *backend.Client, g *gate.Gate, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{api: api, gate: g, log: log}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	s := h.gate.Resolve(c)

	services, err := h.api.ListServices(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de serviços", zap.Error(err))
	}

	query := filterQuery(c)
	filtered := listfilter.Services(services, query)

	rows := make([][]string, 0, len(filtered))
	for _, service := range filtered {
		rows = append(rows, []string{
			itoa(service.ID),
			service.Name,
			service.EstimatedTime,
			strconv.FormatFloat(service.Price, 'f', -1, 64),
			service.Status,
		})
	}

	data := gin.H{
		"Title":         "Gerenciar serviços",
		"AccessLevel":   s.Employee.AccessLevel,
		"PageTitle":     "Lista de serviços",
		"RegisterPath":  "/employee/service/register",
		"RegisterLabel": "Cadastrar novo serviço",
		"ActionPath":    "/employee/service/action",
		"ClearPath":     "/employee/service",
		"EditLabel":     "Editar serviço",
		"DeleteLabel":   "Excluir serviço",
		"FilterOptions": listfilter.ServiceOptions(),
		"Query":         query,
		"Headers":       []string{"Nome", "Tempo estimado", "Preço", "Status"},
		"Rows":          rows,
	}
	if c.Query("deleted") == "1" {
		data["DeletedMessage"] = "Serviço deletado"
		data["RefreshSeconds"] = 1
		data["RefreshTo"] = "/employee/service"
	}
	if msg := c.Query("error"); msg != "" {
		data["ErrorMessage"] = msg
	}

	c.HTML(http.StatusOK, "list.html", data)
}

func (h *ServiceHandler) Action(c *gin.Context) {
	values := postForm(c)
	id := values.Get("selectedId")
	if id == "" {
		c.Redirect(http.StatusFound, "/employee/service")
		return
	}

	switch values.Get("action") {
	case "edit":
		c.Redirect(http.StatusFound, "/employee/service/edit/"+id)
	case "delete":
		if err := h.api.DeleteService(c.Request.Context(), id); err != nil {
			c.Redirect(http.StatusFound, "/employee/service?error="+queryEscape(mutationError("Erro ao deletar serviço", err)))
			return
		}
		c.Redirect(http.StatusFound, "/employee/service?deleted=1")
	default:
		c.Redirect(http.StatusFound, "/employee/service")
	}
}

// ======================================================
// REGISTER
// ======================================================

func (h *ServiceHandler) RegisterPage(c *gin.Context) {
	s := h.gate.Resolve(c)

	c.HTML(http.StatusOK, "service_form.html", gin.H{
		"Title":       "Gerenciar serviços",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo serviço",
		"Editing":     false,
		"Errors":      forms.Errors{},
	})
}

func (h *ServiceHandler) RegisterSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)

	data := gin.H{
		"Title":       "Gerenciar serviços",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo serviço",
		"Editing":     false,
	}

	form, errs := forms.ParseService(postForm(c))
	data["Form"] = form
	data["Errors"] = errs
	if errs.Any() {
		c.HTML(http.StatusOK, "service_form.html", data)
		return
	}

	err := h.api.CreateService(c.Request.Context(), backend.ServicePayload{
		Name:          form.Name,
		Description:   form.Description,
		EstimatedTime: form.EstimatedTime,
		Price:         form.Price,
		Status:        form.Status,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro no cadastro de serviço", err)
		c.HTML(http.StatusOK, "service_form.html", data)
		return
	}

	data["SuccessMessage"] = "Cadastrado com sucesso!"
	data["RefreshSeconds"] = 2
	data["RefreshTo"] = "/employee/service/register"
	c.HTML(http.StatusOK, "service_form.html", data)
}

// ======================================================
// EDIT
// ======================================================

func (h *ServiceHandler) EditPage(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	service, err := h.api.GetService(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar dados do serviço", zap.Error(err), zap.String("id", id))
		c.Redirect(http.StatusFound, "/employee/service")
		return
	}

	c.HTML(http.StatusOK, "service_form.html", gin.H{
		"Title":       "Gerenciar serviços",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando serviço",
		"Editing":     true,
		"Errors":      forms.Errors{},
		"Form": forms.ServiceForm{
			Name:          service.Name,
			Description:   service.Description,
			EstimatedTime: service.EstimatedTime,
			Price:         service.Price,
			Status:        service.Status,
		},
	})
}

func (h *ServiceHandler) EditSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	data := gin.H{
		"Title":       "Gerenciar serviços",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando serviço",
		"Editing":     true,
	}

	form, errs := forms.ParseService(postForm(c))
	data["Form"] = form
	data["Errors"] = errs
	if errs.Any() {
		c.HTML(http.StatusOK, "service_form.html", data)
		return
	}

	err := h.api.UpdateService(c.Request.Context(), id, backend.ServicePayload{
		Name:          form.Name,
		Description:   form.Description,
		EstimatedTime: form.EstimatedTime,
		Price:         form.Price,
		Status:        form.Status,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro na edição de serviço", err)
		c.HTML(http.StatusOK, "service_form.html", data)
		return
	}

	data["SuccessMessage"] = "Alterado com sucesso!"
	data["RefreshSeconds"] = 1
	data["RefreshTo"] = "/employee/service"
	c.HTML(http.StatusOK, "service_form.html", data)
}
