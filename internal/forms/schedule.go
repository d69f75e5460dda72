package forms

import (
	"net/url"
	"strconv"

	"github.com/NowSalonApp/now-salon-web/internal/models"
)

type ScheduleForm struct {
	IDCustomer   int
	IDEmployee   int
	IDService    int
	DateSchedule string `form:"dateSchedule" validate:"required"`
	HourSchedule string `form:"hourSchedule" validate:"required"`
	Status       string `form:"status" validate:"required,oneof=Pendente Finalizado Cancelado"`

	Observation        string
	ReasonCancellation string
	WhoCancelled       string
}

var scheduleMessages = map[string]string{
	"dateSchedule.required": "Informe a data de agendamento!",
	"hourSchedule.required": "Informe o horário de agendamento!",
	"status.required":       "Informe o status do agendamento",
	"status.oneof":          "Status inválido",
}

// ParseSchedule coerces the selected ids and clears the cancellation
// pair whenever the status is anything but "Cancelado", on create and
// edit alike.
func ParseSchedule(values url.Values) (ScheduleForm, Errors) {
	form := ScheduleForm{
		DateSchedule: trimmed(values, "dateSchedule"),
		HourSchedule: trimmed(values, "hourSchedule"),
		Status:       trimmed(values, "status"),

		Observation:        trimmed(values, "observation"),
		ReasonCancellation: trimmed(values, "reasonCancellation"),
		WhoCancelled:       trimmed(values, "whoCancelled"),
	}

	errs := run(form, scheduleMessages)

	idCustomer, err := strconv.Atoi(trimmed(values, "idCustomer"))
	if err != nil {
		errs["idCustomer"] = "Selecione um cliente!"
	} else {
		form.IDCustomer = idCustomer
	}

	idEmployee, err := strconv.Atoi(trimmed(values, "idEmployee"))
	if err != nil {
		errs["idEmployee"] = "Selecione um funcionário!"
	} else {
		form.IDEmployee = idEmployee
	}

	idService, err := strconv.Atoi(trimmed(values, "idService"))
	if err != nil {
		errs["idService"] = "Selecione um serviço!"
	} else {
		form.IDService = idService
	}

	if form.Status != models.ScheduleStatusCancelled {
		form.ReasonCancellation = ""
		form.WhoCancelled = ""
	}

	return form, errs
}
