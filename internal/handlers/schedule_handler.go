package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/forms"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/listfilter"
	"github.com/NowSalonApp/now-salon-web/internal/models"
)

type ScheduleHandler struct {
	api  *backend.Client
	gate *gate.Gate
	log  *zap.Logger
}

func NewScheduleHandler(api *backend.Client, g *gate.Gate, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{api: api, gate: g, log: log}
}

// ======================================================
// LIST
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	s := h.gate.Resolve(c)

	schedules, err := h.api.ListSchedules(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de agendamentos", zap.Error(err))
	}

	query := filterQuery(c)
	filtered := listfilter.Schedules(schedules, query)

	rows := make([][]string, 0, len(filtered))
	for _, schedule := range filtered {
		rows = append(rows, []string{
			itoa(schedule.ID),
			schedule.DateHour(),
			schedule.CustomerName,
			schedule.EmployeeName,
			schedule.ServiceName,
			schedule.Status,
		})
	}

	data := gin.H{
		"Title":         "Gerenciar agendamentos",
		"AccessLevel":   s.Employee.AccessLevel,
		"PageTitle":     "Lista de agendamentos",
		"RegisterPath":  "/employee/schedule/selectcustomer",
		"RegisterLabel": "Incluir novo agendamento",
		"ActionPath":    "/employee/schedule/action",
		"ClearPath":     "/employee/schedule",
		"EditLabel":     "Editar agendamento",
		"DeleteLabel":   "Excluir agendamento",
		"FilterOptions": listfilter.ScheduleOptions(),
		"Query":         query,
		"Headers":       []string{"Data / Hora", "Cliente", "Funcionário", "Serviço", "Status"},
		"Rows":          rows,
	}
	if c.Query("deleted") == "1" {
		data["DeletedMessage"] = "Agendamento deletado"
		data["RefreshSeconds"] = 1
		data["RefreshTo"] = "/employee/schedule"
	}
	if msg := c.Query("error"); msg != "" {
		data["ErrorMessage"] = msg
	}

	c.HTML(http.StatusOK, "list.html", data)
}

func (h *ScheduleHandler) Action(c *gin.Context) {
	values := postForm(c)
	id := values.Get("selectedId")
	if id == "" {
		c.Redirect(http.StatusFound, "/employee/schedule")
		return
	}

	switch values.Get("action") {
	case "edit":
		c.Redirect(http.StatusFound, "/employee/schedule/edit/"+id)
	case "delete":
		if err := h.api.DeleteSchedule(c.Request.Context(), id); err != nil {
			c.Redirect(http.StatusFound, "/employee/schedule?error="+queryEscape(mutationError("Erro ao deletar agendamento", err)))
			return
		}
		c.Redirect(http.StatusFound, "/employee/schedule?deleted=1")
	default:
		c.Redirect(http.StatusFound, "/employee/schedule")
	}
}

// ======================================================
// SELECT CUSTOMER (STEP 1)
// ======================================================

func (h *ScheduleHandler) SelectCustomer(c *gin.Context) {
	s := h.gate.Resolve(c)

	customers, err := h.api.ListCustomers(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de clientes", zap.Error(err))
	}

	query := filterQuery(c)
	filtered := listfilter.Customers(customers, query)

	rows := make([][]string, 0, len(filtered))
	for _, customer := range filtered {
		id := itoa(customer.ID)
		rows = append(rows, []string{id, id, customer.Name, customer.Phone, customer.Email})
	}

	c.HTML(http.StatusOK, "select_customer.html", gin.H{
		"Title":         "Selecionar cliente",
		"AccessLevel":   s.Employee.AccessLevel,
		"PageTitle":     "Selecione um cliente",
		"ActionPath":    "/employee/schedule/selectcustomer",
		"ClearPath":     "/employee/schedule/selectcustomer",
		"FilterOptions": listfilter.CustomerOptions(),
		"Query":         query,
		"Headers":       []string{"Id", "Nome", "Telefone", "Email"},
		"Rows":          rows,
	})
}

// SelectCustomerAction carries the chosen customer id into the
// schedule form URL (step 2).
func (h *ScheduleHandler) SelectCustomerAction(c *gin.Context) {
	values := postForm(c)
	id := values.Get("selectedId")
	if id == "" {
		c.Redirect(http.StatusFound, "/employee/schedule/selectcustomer")
		return
	}

	c.Redirect(http.StatusFound, "/employee/schedule/register/"+id)
}

// ======================================================
// REGISTER (STEP 2)
// ======================================================

func (h *ScheduleHandler) RegisterPage(c *gin.Context) {
	s := h.gate.Resolve(c)
	idCustomer := c.Param("id")

	customer, err := h.api.GetCustomer(c.Request.Context(), idCustomer)
	if err != nil {
		h.log.Error("falha em recuperar dados do cliente", zap.Error(err), zap.String("id", idCustomer))
		c.Redirect(http.StatusFound, "/employee/schedule/selectcustomer")
		return
	}

	c.HTML(http.StatusOK, "schedule_form.html", gin.H{
		"Title":        "Incluir agendamento",
		"AccessLevel":  s.Employee.AccessLevel,
		"PageTitle":    "Incluir novo agendamento",
		"Editing":      false,
		"Errors":       forms.Errors{},
		"CustomerName": customer.Name,
		"IDCustomer":   idCustomer,
		"Services":     h.activeServices(c),
		"Employees":    h.employees(c),
		"Form":         forms.ScheduleForm{Status: models.ScheduleStatusPending},
	})
}

func (h *ScheduleHandler) RegisterSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)
	idCustomer := c.Param("id")

	form, errs := forms.ParseSchedule(postForm(c))

	data := gin.H{
		"Title":        "Incluir agendamento",
		"AccessLevel":  s.Employee.AccessLevel,
		"PageTitle":    "Incluir novo agendamento",
		"Editing":      false,
		"Form":         form,
		"Errors":       errs,
		"IDCustomer":   idCustomer,
		"Services":     h.activeServices(c),
		"Employees":    h.employees(c),
		"CustomerName": c.PostForm("customerName"),
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "schedule_form.html", data)
		return
	}

	err := h.api.CreateSchedule(c.Request.Context(), schedulePayload(form))
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro no cadastro de agendamento", err)
		c.HTML(http.StatusOK, "schedule_form.html", data)
		return
	}

	data["SuccessMessage"] = "Cadastrado com sucesso!"
	data["RefreshSeconds"] = 2
	data["RefreshTo"] = "/employee/schedule/register/" + idCustomer
	c.HTML(http.StatusOK, "schedule_form.html", data)
}

// ======================================================
// EDIT
// ======================================================

func (h *ScheduleHandler) EditPage(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	schedule, err := h.api.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar dados do agendamento", zap.Error(err), zap.String("id", id))
		c.Redirect(http.StatusFound, "/employee/schedule")
		return
	}

	form := forms.ScheduleForm{
		IDCustomer:   schedule.IDCustomer,
		IDEmployee:   schedule.IDEmployee,
		IDService:    schedule.IDService,
		DateSchedule: schedule.DateSchedule,
		HourSchedule: schedule.HourSchedule,
		Status:       schedule.Status,
		Observation:  schedule.Observation,
	}
	// The cancellation pair only pre-fills while the stored status
	// is still "Cancelado".
	if schedule.Status == models.ScheduleStatusCancelled {
		form.ReasonCancellation = schedule.ReasonCancellation
		form.WhoCancelled = schedule.WhoCancelled
	}

	c.HTML(http.StatusOK, "schedule_form.html", gin.H{
		"Title":        "Editar agendamento",
		"AccessLevel":  s.Employee.AccessLevel,
		"PageTitle":    "Editando agendamento",
		"Editing":      true,
		"Errors":       forms.Errors{},
		"CustomerName": schedule.CustomerName,
		"IDCustomer":   itoa(schedule.IDCustomer),
		"Services":     h.activeServices(c),
		"Employees":    h.employees(c),
		"Form":         form,
	})
}

func (h *ScheduleHandler) EditSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	form, errs := forms.ParseSchedule(postForm(c))

	data := gin.H{
		"Title":        "Editar agendamento",
		"AccessLevel":  s.Employee.AccessLevel,
		"PageTitle":    "Editando agendamento",
		"Editing":      true,
		"Form":         form,
		"Errors":       errs,
		"IDCustomer":   itoa(form.IDCustomer),
		"Services":     h.activeServices(c),
		"Employees":    h.employees(c),
		"CustomerName": c.PostForm("customerName"),
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "schedule_form.html", data)
		return
	}

	err := h.api.UpdateSchedule(c.Request.Context(), id, schedulePayload(form))
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro na edição do agendamento", err)
		c.HTML(http.StatusOK, "schedule_form.html", data)
		return
	}

	data["SuccessMessage"] = "Alterado com sucesso!"
	data["RefreshSeconds"] = 1
	data["RefreshTo"] = "/employee/schedule"
	c.HTML(http.StatusOK, "schedule_form.html", data)
}

// --------- Helpers ---------

func schedulePayload(form forms.ScheduleForm) backend.SchedulePayload {
	return backend.SchedulePayload{
		IDCustomer:         form.IDCustomer,
		IDEmployee:         form.IDEmployee,
		IDService:          form.IDService,
		DateSchedule:       form.DateSchedule,
		HourSchedule:       form.HourSchedule,
		Status:             form.Status,
		Observation:        form.Observation,
		ReasonCancellation: form.ReasonCancellation,
		WhoCancelled:       form.WhoCancelled,
	}
}

func (h *ScheduleHandler) activeServices(c *gin.Context) []models.Service {
	services, err := h.api.ListServices(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de serviços", zap.Error(err))
	}
	return services
}

func (h *ScheduleHandler) employees(c *gin.Context) []models.Employee {
	employees, err := h.api.ListEmployees(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de funcionários", zap.Error(err))
	}
	return employees
}
