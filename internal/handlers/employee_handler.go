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
	"github.com/NowSalonApp/now-salon-web/internal/models"
)

type EmployeeHandler struct {
	api  *backend.Client
	gate *gate.Gate
	log  *zap.Logger
}

func NewEmployeeHandler(api *backend.Client, g *gate.Gate, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{api: api, gate: g, log: log}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	s := h.gate.Resolve(c)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":       "Área do funcionário",
		"AccessLevel": s.Employee.AccessLevel,
		"Employee":    s.Employee,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	s := h.gate.Resolve(c)

	employees, err := h.api.ListEmployees(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de funcionários", zap.Error(err))
	}

	query := filterQuery(c)
	filtered := listfilter.Employees(employees, query)

	rows := make([][]string, 0, len(filtered))
	for _, employee := range filtered {
		registration := itoa(employee.Registration)
		rows = append(rows, []string{
			registration,
			registration,
			employee.Name,
			employee.Phone,
			employee.Role,
			employee.AccessLevel,
		})
	}

	data := gin.H{
		"Title":         "Gerenciar funcionários",
		"AccessLevel":   s.Employee.AccessLevel,
		"PageTitle":     "Lista de funcionários",
		"RegisterPath":  "/employee/employee/register",
		"RegisterLabel": "Cadastrar novo funcionário",
		"ActionPath":    "/employee/employee/action",
		"ClearPath":     "/employee/employee",
		"EditLabel":     "Editar funcionário",
		"DeleteLabel":   "Excluir funcionário",
		"FilterOptions": listfilter.EmployeeOptions(),
		"Query":         query,
		"Headers":       []string{"Registro", "Nome", "Telefone", "Cargo", "Acesso"},
		"Rows":          rows,
	}
	if c.Query("deleted") == "1" {
		data["DeletedMessage"] = "Funcionário deletado"
		data["RefreshSeconds"] = 1
		data["RefreshTo"] = "/employee/employee"
	}
	if msg := c.Query("error"); msg != "" {
		data["ErrorMessage"] = msg
	}

	c.HTML(http.StatusOK, "list.html", data)
}

func (h *EmployeeHandler) Action(c *gin.Context) {
	values := postForm(c)
	id := values.Get("selectedId")
	if id == "" {
		c.Redirect(http.StatusFound, "/employee/employee")
		return
	}

	switch values.Get("action") {
	case "edit":
		c.Redirect(http.StatusFound, "/employee/employee/edit/"+id)
	case "delete":
		if err := h.api.DeleteEmployee(c.Request.Context(), id); err != nil {
			c.Redirect(http.StatusFound, "/employee/employee?error="+queryEscape(mutationError("Erro ao deletar funcionário", err)))
			return
		}
		c.Redirect(http.StatusFound, "/employee/employee?deleted=1")
	default:
		c.Redirect(http.StatusFound, "/employee/employee")
	}
}

// ======================================================
// REGISTER
// ======================================================

func (h *EmployeeHandler) RegisterPage(c *gin.Context) {
	s := h.gate.Resolve(c)

	c.HTML(http.StatusOK, "employee_form.html", gin.H{
		"Title":       "Gerenciar funcionários",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo funcionário",
		"Editing":     false,
		"Errors":      forms.Errors{},
		"Services":    h.servicesForCheckboxes(c),
		"CheckedJobs": map[int]bool{},
	})
}

func (h *EmployeeHandler) RegisterSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)

	form, errs := forms.ParseEmployee(postForm(c))

	data := gin.H{
		"Title":       "Gerenciar funcionários",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo funcionário",
		"Editing":     false,
		"Form":        form,
		"Errors":      errs,
		"Services":    h.servicesForCheckboxes(c),
		"CheckedJobs": checkedSet(form.Jobs),
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "employee_form.html", data)
		return
	}

	created, err := h.api.CreateEmployee(c.Request.Context(), backend.EmployeePayload{
		Name:        form.Name,
		Phone:       form.Phone,
		Role:        form.Role,
		AccessLevel: form.AccessLevel,
		Password:    form.Password,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro no cadastro de funcionário", err)
		c.HTML(http.StatusOK, "employee_form.html", data)
		return
	}

	// The jobs batch is keyed by the registration the backend just
	// generated; its failure is reported independently, with no
	// rollback of the created employee.
	var alerts []string
	if len(form.Jobs) != 0 {
		jobs := makeJobs(form.Jobs, created.Registration)
		if err := h.api.AddJobs(c.Request.Context(), jobs); err != nil {
			alerts = append(alerts, mutationError("Erro no cadastro de serviços do funcionário", err))
		}
	}

	data["Alerts"] = alerts
	data["SuccessMessage"] = "Cadastrado com sucesso!"
	data["RefreshSeconds"] = 2
	data["RefreshTo"] = "/employee/employee/register"
	c.HTML(http.StatusOK, "employee_form.html", data)
}

// ======================================================
// EDIT
// ======================================================

func (h *EmployeeHandler) EditPage(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	employee, err := h.api.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar dados do funcionário", zap.Error(err), zap.String("id", id))
		c.Redirect(http.StatusFound, "/employee/employee")
		return
	}

	registered, err := h.api.JobsByEmployee(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar serviços do funcionário", zap.Error(err), zap.String("id", id))
	}

	checked := map[int]bool{}
	for _, job := range registered {
		checked[job.IDService] = true
	}

	c.HTML(http.StatusOK, "employee_form.html", gin.H{
		"Title":       "Gerenciar funcionários",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando funcionário",
		"Editing":     true,
		"Errors":      forms.Errors{},
		"Services":    h.servicesForCheckboxes(c),
		"CheckedJobs": checked,
		"Form": forms.EmployeeEditForm{
			Name:        employee.Name,
			Phone:       employee.Phone,
			Role:        employee.Role,
			AccessLevel: employee.AccessLevel,
		},
	})
}

func (h *EmployeeHandler) EditSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	form, errs := forms.ParseEmployeeEdit(postForm(c))

	data := gin.H{
		"Title":       "Gerenciar funcionários",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando funcionário",
		"Editing":     true,
		"Form":        form,
		"Errors":      errs,
		"Services":    h.servicesForCheckboxes(c),
		"CheckedJobs": checkedSet(form.Jobs),
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "employee_form.html", data)
		return
	}

	registered, err := h.api.JobsByEmployee(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar serviços do funcionário", zap.Error(err), zap.String("id", id))
	}
	registeredIDs := make([]int, 0, len(registered))
	for _, job := range registered {
		registeredIDs = append(registeredIDs, job.IDService)
	}

	toAdd, toRemove := listfilter.DiffJobs(registeredIDs, form.Jobs)

	var alerts []string
	updated := true

	err = h.api.UpdateEmployee(c.Request.Context(), id, backend.EmployeePayload{
		Name:        form.Name,
		Phone:       form.Phone,
		Role:        form.Role,
		AccessLevel: form.AccessLevel,
		Password:    form.Password,
	})
	if err != nil {
		updated = false
		alerts = append(alerts, mutationError("Erro na edição de funcionário", err))
	}

	// The two batches run sequentially and report independently:
	// a failed half is not compensated by rolling back the other.
	idEmployee, _ := strconv.Atoi(id)
	if len(toAdd) > 0 {
		if err := h.api.AddJobs(c.Request.Context(), makeJobs(toAdd, idEmployee)); err != nil {
			alerts = append(alerts, mutationError("Erro na inserção dos novos serviços do funcionário em edição", err))
		}
	}
	if len(toRemove) > 0 {
		if err := h.api.RemoveJobs(c.Request.Context(), makeJobs(toRemove, idEmployee)); err != nil {
			alerts = append(alerts, mutationError("Erro ao excluir os serviços do funcionário em edição", err))
		}
	}

	data["Alerts"] = alerts
	if updated {
		data["SuccessMessage"] = "Alterado com sucesso!"
		data["RefreshSeconds"] = 1
		data["RefreshTo"] = "/employee/employee"
	}
	c.HTML(http.StatusOK, "employee_form.html", data)
}

// --------- Helpers ---------

func (h *EmployeeHandler) servicesForCheckboxes(c *gin.Context) []models.Service {
	services, err := h.api.ListServices(c.Request.Context())
	if err != nil {
		h.log.Error("falha em recuperar dados de serviços", zap.Error(err))
	}
	return services
}

func checkedSet(ids []int) map[int]bool {
	checked := make(map[int]bool, len(ids))
	for _, id := range ids {
		checked[id] = true
	}
	return checked
}

func makeJobs(serviceIDs []int, idEmployee int) []models.EmployeeJob {
	jobs := make([]models.EmployeeJob, 0, len(serviceIDs))
	for _, idService := range serviceIDs {
		jobs = append(jobs, models.EmployeeJob{IDService: idService, IDEmployee: idEmployee})
	}
	return jobs
}
