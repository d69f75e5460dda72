package models

const (
	ServiceStatusActive   = "Ativo"
	ServiceStatusDisabled = "Desativado"
)

type Service struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	EstimatedTime string  `json:"estimatedTime"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
}
