package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/NowSalonApp/now-salon-web/internal/models"
)

// StatusError reports a backend response outside the expected status
// code. Transport failures keep their original error type.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

func IsStatus(err error, code int) bool {
	se, ok := err.(*StatusError)
	return ok && se.Code == code
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// --------- Auth ---------

func (c *Client) AuthCustomer(ctx context.Context, token string) (*models.CustomerProfile, error) {
	var profile models.CustomerProfile
	if err := c.postToken(ctx, "/customers/api/auth", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) AuthEmployee(ctx context.Context, token string) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	if err := c.postToken(ctx, "/employees/api/auth", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type CustomerLogin struct {
	IDToken string `json:"idToken"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type EmployeeLogin struct {
	IDToken     string `json:"idToken"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	AccessLevel string `json:"accessLevel"`
}

func (c *Client) LoginCustomer(ctx context.Context, email, password string) (*CustomerLogin, error) {
	body := map[string]string{"email": email, "password": password}

	var login CustomerLogin
	if err := c.doJSON(ctx, http.MethodPost, "/customers/api/login", body, http.StatusOK, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// LoginEmployee sends the registration as a number, the way the
// backend expects it.
func (c *Client) LoginEmployee(ctx context.Context, registration int, password string) (*EmployeeLogin, error) {
	body := map[string]any{"registration": registration, "password": password}

	var login EmployeeLogin
	if err := c.doJSON(ctx, http.MethodPost, "/employees/api/login", body, http.StatusOK, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// --------- Customers ---------

// CustomerPayload omits password entirely when left blank, meaning
// "keep the current password" on updates.
type CustomerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password,omitempty"`
}

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := c.doJSON(ctx, http.MethodGet, "/customers/api", nil, http.StatusOK, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := c.doJSON(ctx, http.MethodGet, "/customers/api/?id="+id, nil, http.StatusOK, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, payload CustomerPayload) error {
	return c.doJSON(ctx, http.MethodPost, "/customers/api", payload, http.StatusCreated, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, payload CustomerPayload) error {
	return c.doJSON(ctx, http.MethodPut, "/customers/api/?id="+id, payload, http.StatusOK, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/customers/api/?id="+id, nil, http.StatusOK, nil)
}

// --------- Employees ---------

type EmployeePayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	AccessLevel string `json:"accessLevel"`
	Password    string `json:"password,omitempty"`
}

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := c.doJSON(ctx, http.MethodGet, "/employees/api", nil, http.StatusOK, &employees)
	return employees, err
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/employees/api/?id="+id, nil, http.StatusOK, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee returns the created record: the generated
// registration keys the follow-up jobs batch.
func (c *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (*models.Employee, error) {
	var created models.Employee
	if err := c.doJSON(ctx, http.MethodPost, "/employees/api", payload, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, payload EmployeePayload) error {
	return c.doJSON(ctx, http.MethodPut, "/employees/api/?id="+id, payload, http.StatusOK, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/employees/api/?id="+id, nil, http.StatusOK, nil)
}

// --------- Services ---------

type ServicePayload struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	EstimatedTime string  `json:"estimatedTime"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := c.doJSON(ctx, http.MethodGet, "/services/api", nil, http.StatusOK, &services)
	return services, err
}

func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := c.doJSON(ctx, http.MethodGet, "/services/api/?id="+id, nil, http.StatusOK, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) CreateService(ctx context.Context, payload ServicePayload) error {
	return c.doJSON(ctx, http.MethodPost, "/services/api", payload, http.StatusCreated, nil)
}

func (c *Client) UpdateService(ctx context.Context, id string, payload ServicePayload) error {
	return c.doJSON(ctx, http.MethodPut, "/services/api/?id="+id, payload, http.StatusOK, nil)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/services/api/?id="+id, nil, http.StatusOK, nil)
}

// --------- Schedules ---------

// SchedulePayload drops the cancellation pair whenever the status is
// not "Cancelado"; callers clear the fields before sending.
type SchedulePayload struct {
	IDCustomer         int    `json:"idCustomer"`
	IDEmployee         int    `json:"idEmployee"`
	IDService          int    `json:"idService"`
	DateSchedule       string `json:"dateSchedule"`
	HourSchedule       string `json:"hourSchedule"`
	Status             string `json:"status"`
	Observation        string `json:"observation,omitempty"`
	ReasonCancellation string `json:"reasonCancellation,omitempty"`
	WhoCancelled       string `json:"whoCancelled,omitempty"`
}

func (c *Client) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := c.doJSON(ctx, http.MethodGet, "/schedules/api", nil, http.StatusOK, &schedules)
	return schedules, err
}

func (c *Client) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := c.doJSON(ctx, http.MethodGet, "/schedules/api/?id="+id, nil, http.StatusOK, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *Client) CreateSchedule(ctx context.Context, payload SchedulePayload) error {
	return c.doJSON(ctx, http.MethodPost, "/schedules/api", payload, http.StatusCreated, nil)
}

func (c *Client) UpdateSchedule(ctx context.Context, id string, payload SchedulePayload) error {
	return c.doJSON(ctx, http.MethodPut, "/schedules/api/?id="+id, payload, http.StatusOK, nil)
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/schedules/api/?id="+id, nil, http.StatusOK, nil)
}

// --------- Employee jobs ---------

func (c *Client) JobsByEmployee(ctx context.Context, idEmployee string) ([]models.EmployeeJob, error) {
	var jobs []models.EmployeeJob
	err := c.doJSON(ctx, http.MethodGet, "/employeeJobs/api/jobsbyemployee/?idemployee="+idEmployee, nil, http.StatusOK, &jobs)
	return jobs, err
}

func (c *Client) AddJobs(ctx context.Context, jobs []models.EmployeeJob) error {
	return c.doJSON(ctx, http.MethodPost, "/employeeJobs/api", jobs, http.StatusCreated, nil)
}

func (c *Client) RemoveJobs(ctx context.Context, jobs []models.EmployeeJob) error {
	return c.doJSON(ctx, http.MethodDelete, "/employeeJobs/api", jobs, http.StatusOK, nil)
}

// --------- Salon ---------

func (c *Client) GetSalon(ctx context.Context) (*models.Salon, error) {
	var salon models.Salon
	if err := c.doJSON(ctx, http.MethodGet, "/salons/api/?id=1", nil, http.StatusOK, &salon); err != nil {
		return nil, err
	}
	return &salon, nil
}

func (c *Client) UpdateSalon(ctx context.Context, salon models.Salon) error {
	return c.doJSON(ctx, http.MethodPut, "/salons/api/?id=1", salon, http.StatusOK, nil)
}

// --------- Plumbing ---------

// postToken sends the raw bearer token as text/plain and decodes the
// profile on 200.
func (c *Client) postToken(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(token))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return &StatusError{Code: resp.StatusCode}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
