package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/config"
	"github.com/NowSalonApp/now-salon-web/internal/models"
	"github.com/NowSalonApp/now-salon-web/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAPI stands in for the scheduling backend, serving the fixed
// fixtures every page test reads and recording mutations.
type fakeAPI struct {
	customers []models.Customer
	employees []models.Employee
	services  []models.Service
	schedules []models.Schedule

	deletedCustomerIDs []string
	createdCustomers   []map[string]any

	conflictEmail string
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	authEmployee := func(w http.ResponseWriter, r *http.Request) {
		switch readBody(r) {
		case "tok-admin":
			json.NewEncoder(w).Encode(models.EmployeeProfile{Name: "Ana", Role: "Gerente", AccessLevel: "Admin"})
		case "tok-func":
			json.NewEncoder(w).Encode(models.EmployeeProfile{Name: "Carlos", Role: "Barbeiro", AccessLevel: "Funcionario"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}
	mux.HandleFunc("/employees/api/auth", authEmployee)

	mux.HandleFunc("/customers/api/auth", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	customers := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if id := r.URL.Query().Get("id"); id != "" {
				for _, customer := range f.customers {
					if id == strconv.Itoa(customer.ID) {
						json.NewEncoder(w).Encode(customer)
						return
					}
				}
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(f.customers)
		case http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if email, _ := body["email"].(string); email == f.conflictEmail {
				w.WriteHeader(http.StatusConflict)
				return
			}
			f.createdCustomers = append(f.createdCustomers, body)
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			f.deletedCustomerIDs = append(f.deletedCustomerIDs, r.URL.Query().Get("id"))
		case http.MethodPut:
		}
	}
	mux.HandleFunc("/customers/api", customers)
	mux.HandleFunc("/customers/api/", customers)

	employees := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.employees)
	}
	mux.HandleFunc("/employees/api", employees)
	mux.HandleFunc("/employees/api/", employees)

	services := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.services)
	}
	mux.HandleFunc("/services/api", services)
	mux.HandleFunc("/services/api/", services)

	schedules := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.schedules)
	}
	mux.HandleFunc("/schedules/api", schedules)
	mux.HandleFunc("/schedules/api/", schedules)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func readBody(r *http.Request) string {
	raw, _ := io.ReadAll(r.Body)
	return string(raw)
}

func newFixture(t *testing.T) (*fakeAPI, *gin.Engine) {
	t.Helper()

	api := &fakeAPI{
		customers: []models.Customer{
			{ID: 1, Name: "Maria Souza", Email: "maria@exemplo.com", Phone: "11 98765-4321"},
			{ID: 2, Name: "João Pereira", Email: "joao@exemplo.com", Phone: "21 91234-5678"},
		},
		employees: []models.Employee{
			{Registration: 1001, Name: "Carlos Lima", Role: "Barbeiro", AccessLevel: "Funcionario"},
		},
		services: []models.Service{
			{ID: 7, Name: "Corte de cabelo", EstimatedTime: "00:30", Price: 35, Status: "Ativo"},
		},
		conflictEmail: "repetido@exemplo.com",
	}
	server := api.server(t)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	RegisterRoutes(r, &config.Config{APIBaseURL: server.URL}, zap.NewNop())

	return api, r
}

func adminCookie() *http.Cookie {
	return &http.Cookie{Name: session.EmployeeCookie, Value: "tok-admin"}
}

func doGET(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPOST(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePageAnonymous(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Agende serviços")
	assert.Contains(t, w.Body.String(), "/portal")
}

func TestCustomerListShowsAllRows(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/employee/customer", adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Lista de clientes")
	assert.Contains(t, body, "Maria Souza")
	assert.Contains(t, body, "João Pereira")
}

func TestCustomerListFiltersByName(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/employee/customer?filterValue=jo%C3%A3o&filterOption=name", adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "João Pereira")
	assert.NotContains(t, body, "Maria Souza")
}

func TestCustomerListRequiresAdmin(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/employee/customer", &http.Cookie{Name: session.EmployeeCookie, Value: "tok-func"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCustomerActionEditRedirects(t *testing.T) {
	_, r := newFixture(t)

	w := doPOST(r, "/employee/customer/action",
		url.Values{"action": {"edit"}, "selectedId": {"2"}}, adminCookie())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/employee/customer/edit/2", w.Header().Get("Location"))
}

func TestCustomerActionDelete(t *testing.T) {
	api, r := newFixture(t)

	w := doPOST(r, "/employee/customer/action",
		url.Values{"action": {"delete"}, "selectedId": {"2"}}, adminCookie())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/employee/customer?deleted=1", w.Header().Get("Location"))
	assert.Equal(t, []string{"2"}, api.deletedCustomerIDs)
}

func TestCustomerRegisterValidationError(t *testing.T) {
	api, r := newFixture(t)

	w := doPOST(r, "/employee/customer/register", url.Values{
		"name":     {"Pedro"},
		"phone":    {"11987654321"},
		"password": {"segredo"},
	}, adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Informe um email")
	assert.Empty(t, api.createdCustomers)
}

func TestCustomerRegisterSuccess(t *testing.T) {
	api, r := newFixture(t)

	w := doPOST(r, "/employee/customer/register", url.Values{
		"name":     {"Pedro Santos"},
		"email":    {"pedro@exemplo.com"},
		"phone":    {"11987654321"},
		"password": {"segredo"},
	}, adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cadastrado com sucesso!")
	require.Len(t, api.createdCustomers, 1)
	assert.Equal(t, "11 98765-4321", api.createdCustomers[0]["phone"])
}

func TestSignUpConflict(t *testing.T) {
	_, r := newFixture(t)

	w := doPOST(r, "/signup", url.Values{
		"name":     {"Maria"},
		"email":    {"repetido@exemplo.com"},
		"phone":    {"11987654321"},
		"password": {"segredo"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email já cadastrado, por favor insira um novo email")
}

func TestSelectCustomerActionCarriesID(t *testing.T) {
	_, r := newFixture(t)

	w := doPOST(r, "/employee/schedule/selectcustomer",
		url.Values{"selectedId": {"1"}}, adminCookie())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/employee/schedule/register/1", w.Header().Get("Location"))
}

func TestScheduleRegisterPageShowsCustomer(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/employee/schedule/register/1", adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Maria Souza")
	assert.Contains(t, body, "Carlos Lima")
	assert.Contains(t, body, "Corte de cabelo")
}

func TestScheduleRegisterValidationError(t *testing.T) {
	_, r := newFixture(t)

	w := doPOST(r, "/employee/schedule/register/1", url.Values{
		"idCustomer":   {"1"},
		"customerName": {"Maria Souza"},
		"dateSchedule": {"2026-09-10"},
		"hourSchedule": {"14:30"},
		"status":       {"Pendente"},
	}, adminCookie())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Selecione um funcionário!")
	assert.Contains(t, body, "Selecione um serviço!")
}

func TestHomeRedirectsEmployeeToDashboard(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/", adminCookie())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/employee", w.Header().Get("Location"))
}

func TestLogoutRedirectsHome(t *testing.T) {
	_, r := newFixture(t)

	w := doGET(r, "/logout", adminCookie())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
