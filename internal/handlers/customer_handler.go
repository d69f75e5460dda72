package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/forms"
	"github.com/NowSalonApp/now-salon-web/internal/gate"
	"github.com/NowSalonApp/now-salon-web/internal/listfilter"
)

type CustomerHandler struct {
	api  *backend.Client
	gate *gate.Gate
	log  *zap.Logger
}

func NewCustomerHandler(api *backend.Client, g *gate.Gate, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{api: api, gate: g, log: log}
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
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

	data := gin.H{
		"Title":         "Gerenciar clientes",
		"AccessLevel":   s.Employee.AccessLevel,
		"PageTitle":     "Lista de clientes",
		"RegisterPath":  "/employee/customer/register",
		"RegisterLabel": "Cadastrar novo cliente",
		"ActionPath":    "/employee/customer/action",
		"ClearPath":     "/employee/customer",
		"EditLabel":     "Editar cliente",
		"DeleteLabel":   "Excluir cliente",
		"FilterOptions": listfilter.CustomerOptions(),
		"Query":         query,
		"Headers":       []string{"Id", "Nome", "Telefone", "Email"},
		"Rows":          rows,
	}
	if c.Query("deleted") == "1" {
		data["DeletedMessage"] = "Cliente deletado"
		data["RefreshSeconds"] = 1
		data["RefreshTo"] = "/employee/customer"
	}
	if msg := c.Query("error"); msg != "" {
		data["ErrorMessage"] = msg
	}

	c.HTML(http.StatusOK, "list.html", data)
}

// Action dispatches the list form's edit/delete buttons on the
// selected radio id.
func (h *CustomerHandler) Action(c *gin.Context) {
	values := postForm(c)
	id := values.Get("selectedId")
	if id == "" {
		c.Redirect(http.StatusFound, "/employee/customer")
		return
	}

	switch values.Get("action") {
	case "edit":
		c.Redirect(http.StatusFound, "/employee/customer/edit/"+id)
	case "delete":
		if err := h.api.DeleteCustomer(c.Request.Context(), id); err != nil {
			message := "Erro ao deletar cliente"
			if _, ok := err.(*backend.StatusError); !ok {
				message += ": " + err.Error()
			}
			c.Redirect(http.StatusFound, "/employee/customer?error="+queryEscape(message))
			return
		}
		c.Redirect(http.StatusFound, "/employee/customer?deleted=1")
	default:
		c.Redirect(http.StatusFound, "/employee/customer")
	}
}

// ======================================================
// REGISTER
// ======================================================

func (h *CustomerHandler) RegisterPage(c *gin.Context) {
	s := h.gate.Resolve(c)

	c.HTML(http.StatusOK, "customer_form.html", gin.H{
		"Title":       "Gerenciar clientes",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo cliente",
		"Editing":     false,
		"Errors":      forms.Errors{},
	})
}

func (h *CustomerHandler) RegisterSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)

	data := gin.H{
		"Title":       "Gerenciar clientes",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Criar novo cliente",
		"Editing":     false,
	}

	form, errs := forms.ParseCustomer(postForm(c))
	data["Form"] = form
	data["Errors"] = errs
	if errs.Any() {
		c.HTML(http.StatusOK, "customer_form.html", data)
		return
	}

	err := h.api.CreateCustomer(c.Request.Context(), backend.CustomerPayload{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro no cadastro de cliente", err)
		c.HTML(http.StatusOK, "customer_form.html", data)
		return
	}

	data["SuccessMessage"] = "Cadastrado com sucesso!"
	data["RefreshSeconds"] = 2
	data["RefreshTo"] = "/employee/customer/register"
	c.HTML(http.StatusOK, "customer_form.html", data)
}

// ======================================================
// EDIT
// ======================================================

func (h *CustomerHandler) EditPage(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	customer, err := h.api.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.log.Error("falha em recuperar dados do cliente", zap.Error(err), zap.String("id", id))
		c.Redirect(http.StatusFound, "/employee/customer")
		return
	}

	c.HTML(http.StatusOK, "customer_form.html", gin.H{
		"Title":       "Gerenciar clientes",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando cliente",
		"Editing":     true,
		"Errors":      forms.Errors{},
		"Form": forms.CustomerEditForm{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
	})
}

func (h *CustomerHandler) EditSubmit(c *gin.Context) {
	s := h.gate.Resolve(c)
	id := c.Param("id")

	data := gin.H{
		"Title":       "Gerenciar clientes",
		"AccessLevel": s.Employee.AccessLevel,
		"PageTitle":   "Editando cliente",
		"Editing":     true,
	}

	form, errs := forms.ParseCustomerEdit(postForm(c))
	data["Form"] = form
	data["Errors"] = errs
	if errs.Any() {
		c.HTML(http.StatusOK, "customer_form.html", data)
		return
	}

	// An empty password never reaches the payload: omitted means
	// "keep the current one".
	err := h.api.UpdateCustomer(c.Request.Context(), id, backend.CustomerPayload{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		data["ErrorMessage"] = mutationError("Erro na edição de cliente", err)
		c.HTML(http.StatusOK, "customer_form.html", data)
		return
	}

	data["SuccessMessage"] = "Alterado com sucesso!"
	data["RefreshSeconds"] = 1
	data["RefreshTo"] = "/employee/customer"
	c.HTML(http.StatusOK, "customer_form.html", data)
}
