package models

const (
	AccessLevelEmployee = "Funcionario"
	AccessLevelAdmin    = "Admin"
)

type Employee struct {
	Registration int    `json:"registration"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	AccessLevel  string `json:"accessLevel"`
}

type EmployeeProfile struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	AccessLevel string `json:"accessLevel"`
}

// EmployeeJob links an employee to a service they are qualified to
// perform. Maintained through batch add/remove calls, never updates.
type EmployeeJob struct {
	IDService  int `json:"idService"`
	IDEmployee int `json:"idEmployee"`
}
