// Package listfilter implements the list pages' filter contract:
// the user picks one field option and types a value, and each entity
// defines its own per-field match. Matching is a case-insensitive
// substring check everywhere except the service price, which compares
// numerically.
package listfilter

import (
	"strconv"
	"strings"

	"github.com/NowSalonApp/now-salon-web/internal/models"
)

type Option struct {
	Value string
	Label string
}

// Query is the (value, option) pair collected from the filter form.
// Filtering is a no-op unless both parts are present.
type Query struct {
	Value  string
	Option string
}

func (q Query) Active() bool {
	return q.Value != "" && q.Option != ""
}

func contains(field, value string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(value))
}

func CustomerOptions() []Option {
	return []Option{
		{Value: "id", Label: "Id"},
		{Value: "name", Label: "Nome"},
		{Value: "phone", Label: "Telefone"},
		{Value: "email", Label: "Email"},
	}
}

func Customers(customers []models.Customer, q Query) []models.Customer {
	if !q.Active() {
		return customers
	}

	filtered := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		var keep bool
		switch q.Option {
		case "id":
			keep = contains(strconv.Itoa(customer.ID), q.Value)
		case "name":
			keep = contains(customer.Name, q.Value)
		case "email":
			keep = contains(customer.Email, q.Value)
		case "phone":
			keep = contains(customer.Phone, q.Value)
		default:
			keep = true
		}
		if keep {
			filtered = append(filtered, customer)
		}
	}
	return filtered
}

func EmployeeOptions() []Option {
	return []Option{
		{Value: "registration", Label: "Matrícula"},
		{Value: "name", Label: "Nome"},
		{Value: "phone", Label: "Telefone"},
		{Value: "role", Label: "Cargo"},
		{Value: "accessLevel", Label: "Nível de acesso"},
	}
}

func Employees(employees []models.Employee, q Query) []models.Employee {
	if !q.Active() {
		return employees
	}

	filtered := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		var keep bool
		switch q.Option {
		case "registration":
			keep = contains(strconv.Itoa(employee.Registration), q.Value)
		case "name":
			keep = contains(employee.Name, q.Value)
		case "phone":
			keep = contains(employee.Phone, q.Value)
		case "role":
			keep = contains(employee.Role, q.Value)
		case "accessLevel":
			keep = contains(employee.AccessLevel, q.Value)
		default:
			keep = true
		}
		if keep {
			filtered = append(filtered, employee)
		}
	}
	return filtered
}

func ServiceOptions() []Option {
	return []Option{
		{Value: "name", Label: "Nome"},
		{Value: "duration", Label: "Duração"},
		{Value: "price", Label: "Preço"},
		{Value: "status", Label: "Status"},
	}
}

// Services matches the price option as "price <= value"; a
// non-numeric value matches nothing.
func Services(services []models.Service, q Query) []models.Service {
	if !q.Active() {
		return services
	}

	filtered := make([]models.Service, 0, len(services))
	for _, service := range services {
		var keep bool
		switch q.Option {
		case "name":
			keep = contains(service.Name, q.Value)
		case "duration":
			keep = strings.Contains(service.EstimatedTime, q.Value)
		case "price":
			ceiling, err := strconv.ParseFloat(q.Value, 64)
			keep = err == nil && service.Price <= ceiling
		case "status":
			keep = contains(service.Status, q.Value)
		default:
			keep = true
		}
		if keep {
			filtered = append(filtered, service)
		}
	}
	return filtered
}

func ScheduleOptions() []Option {
	return []Option{
		{Value: "customer-name", Label: "Cliente"},
		{Value: "employee-name", Label: "Funcionário"},
		{Value: "service-name", Label: "Serviço"},
		{Value: "date-hour-schedule", Label: "Data/hora"},
		{Value: "status", Label: "Status"},
	}
}

func Schedules(schedules []models.Schedule, q Query) []models.Schedule {
	if !q.Active() {
		return schedules
	}

	filtered := make([]models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		var keep bool
		switch q.Option {
		case "customer-name":
			keep = contains(schedule.CustomerName, q.Value)
		case "employee-name":
			keep = contains(schedule.EmployeeName, q.Value)
		case "service-name":
			keep = contains(schedule.ServiceName, q.Value)
		case "date-hour-schedule":
			keep = strings.Contains(schedule.DateHour(), strings.ToLower(q.Value))
		case "status":
			keep = contains(schedule.Status, q.Value)
		default:
			keep = true
		}
		if keep {
			filtered = append(filtered, schedule)
		}
	}
	return filtered
}
