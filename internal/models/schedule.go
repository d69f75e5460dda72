package models

const (
	ScheduleStatusPending   = "Pendente"
	ScheduleStatusDone      = "Finalizado"
	ScheduleStatusCancelled = "Cancelado"
)

const (
	CancelledByEmployee = "Funcionario"
	CancelledByCustomer = "Cliente"
)

// Schedule carries the denormalized display fields (customerName,
// serviceName, ...) the backend joins in for list rendering.
type Schedule struct {
	ID         int `json:"id"`
	IDCustomer int `json:"idCustomer"`
	IDEmployee int `json:"idEmployee"`
	IDService  int `json:"idService"`

	CustomerName  string  `json:"customerName"`
	EmployeeName  string  `json:"employeeName"`
	ServiceName   string  `json:"serviceName"`
	CustomerPhone string  `json:"customerPhone"`
	ServicePrice  float64 `json:"servicePrice"`

	DateSchedule string `json:"dateSchedule"`
	HourSchedule string `json:"hourSchedule"`
	Status       string `json:"status"`

	Observation        string `json:"observation,omitempty"`
	ReasonCancellation string `json:"reasonCancellation,omitempty"`
	WhoCancelled       string `json:"whoCancelled,omitempty"`
}

// DateHour is the combined "date-hour" column shown on the schedule
// list and matched by its date/hour filter.
func (s Schedule) DateHour() string {
	return s.DateSchedule + "-" + s.HourSchedule
}
