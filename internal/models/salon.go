package models

// Salon is the single-row establishment configuration (backend id 1).
// DaysWeekOpen is a comma-joined string, e.g. "Segunda, Terça".
type Salon struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	DaysWeekOpen string `json:"daysWeekOpen"`
	TimeOpen     string `json:"timeOpen"`
	TimeClose    string `json:"timeClose"`
	EmailContact string `json:"emailContact"`
	Status       string `json:"status"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	CityState    string `json:"cityState"`
}
