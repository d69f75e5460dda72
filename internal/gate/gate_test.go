package gate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/models"
	"github.com/NowSalonApp/now-salon-web/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthBackend answers the two auth endpoints from fixed token
// tables; unknown tokens get a 401.
func fakeAuthBackend(t *testing.T, customers map[string]models.CustomerProfile, employees map[string]models.EmployeeProfile) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/customers/api/auth", func(w http.ResponseWriter, r *http.Request) {
		token := readToken(r)
		profile, ok := customers[token]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(profile)
	})
	mux.HandleFunc("/employees/api/auth", func(w http.ResponseWriter, r *http.Request) {
		token := readToken(r)
		profile, ok := employees[token]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(profile)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func readToken(r *http.Request) string {
	raw, _ := io.ReadAll(r.Body)
	return string(raw)
}

func newTestRouter(server *httptest.Server) *gin.Engine {
	resolver := session.NewResolver(backend.New(server.URL), zap.NewNop())
	g := New(resolver)

	r := gin.New()

	employee := r.Group("/employee")
	employee.Use(g.EmployeeArea())
	employee.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })

	admin := r.Group("/employee")
	admin.Use(g.AdminArea())
	admin.GET("/salon", func(c *gin.Context) { c.String(http.StatusOK, "salon") })
	admin.GET("/service", func(c *gin.Context) { c.String(http.StatusOK, "services") })

	public := r.Group("/")
	public.Use(g.CustomerArea())
	public.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })

	return r
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func customerCookie(token string) *http.Cookie {
	return &http.Cookie{Name: session.CustomerCookie, Value: token}
}

func employeeCookie(token string) *http.Cookie {
	return &http.Cookie{Name: session.EmployeeCookie, Value: token}
}

func TestEmployeeAreaDeniesAnonymous(t *testing.T) {
	server := fakeAuthBackend(t, nil, nil)
	r := newTestRouter(server)

	w := get(r, "/employee")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestEmployeeAreaAllowsEmployee(t *testing.T) {
	server := fakeAuthBackend(t, nil, map[string]models.EmployeeProfile{
		"tok-func": {Name: "Carlos", AccessLevel: "Funcionario"},
	})
	r := newTestRouter(server)

	w := get(r, "/employee", employeeCookie("tok-func"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestEmployeeAreaDeniesConflictingSessions(t *testing.T) {
	server := fakeAuthBackend(t,
		map[string]models.CustomerProfile{"tok-cli": {Name: "Maria"}},
		map[string]models.EmployeeProfile{"tok-func": {Name: "Carlos", AccessLevel: "Admin"}},
	)
	r := newTestRouter(server)

	w := get(r, "/employee", customerCookie("tok-cli"), employeeCookie("tok-func"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestEmployeeAreaDeniesExpiredToken(t *testing.T) {
	server := fakeAuthBackend(t, nil, nil)
	r := newTestRouter(server)

	w := get(r, "/employee", employeeCookie("tok-expirado"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAdminAreaDeniesNonAdmin(t *testing.T) {
	server := fakeAuthBackend(t, nil, map[string]models.EmployeeProfile{
		"tok-func": {Name: "Carlos", AccessLevel: "Funcionario"},
	})
	r := newTestRouter(server)

	for _, path := range []string{"/employee/salon", "/employee/service"} {
		w := get(r, path, employeeCookie("tok-func"))

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestAdminAreaAllowsAdmin(t *testing.T) {
	server := fakeAuthBackend(t, nil, map[string]models.EmployeeProfile{
		"tok-admin": {Name: "Ana", AccessLevel: "Admin"},
	})
	r := newTestRouter(server)

	w := get(r, "/employee/salon", employeeCookie("tok-admin"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "salon", w.Body.String())
}

func TestCustomerAreaRedirectsAuthenticatedCustomer(t *testing.T) {
	server := fakeAuthBackend(t, map[string]models.CustomerProfile{
		"tok-cli": {Name: "Maria"},
	}, nil)
	r := newTestRouter(server)

	w := get(r, "/login", customerCookie("tok-cli"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCustomerAreaRedirectsEmployeeToDashboard(t *testing.T) {
	server := fakeAuthBackend(t, nil, map[string]models.EmployeeProfile{
		"tok-func": {Name: "Carlos", AccessLevel: "Funcionario"},
	})
	r := newTestRouter(server)

	w := get(r, "/login", employeeCookie("tok-func"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/employee", w.Header().Get("Location"))
}

func TestCustomerAreaAllowsAnonymous(t *testing.T) {
	server := fakeAuthBackend(t, nil, nil)
	r := newTestRouter(server)

	w := get(r, "/login")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", w.Body.String())
}

func TestSessionHelpers(t *testing.T) {
	anonymous := Session{}
	assert.False(t, anonymous.IsCustomerAuthenticated())
	assert.False(t, anonymous.IsEmployeeAuthenticated())
	assert.False(t, anonymous.IsAdmin())

	staff := Session{Employee: &models.EmployeeProfile{AccessLevel: "Funcionario"}}
	assert.True(t, staff.IsEmployeeAuthenticated())
	assert.False(t, staff.IsAdmin())

	admin := Session{Employee: &models.EmployeeProfile{AccessLevel: "Admin"}}
	assert.True(t, admin.IsAdmin())
}
