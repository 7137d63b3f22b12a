package domain

import "time"

// AlertType define a severidade de um alerta
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// AlertTypes lista as severidades na ordem usada pelo gerador
var AlertTypes = []AlertType{AlertCritical, AlertWarning, AlertInfo}

// AlertRecord representa um alerta em tempo real.
// Só é alterado por ações do usuário (marcar como lido, dispensar).
type AlertRecord struct {
	ID        string    `json:"id" yaml:"id"`
	Type      AlertType `json:"type" yaml:"type"`
	Title     string    `json:"title" yaml:"title"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	IsRead    bool      `json:"is_read" yaml:"is_read"`
}

// AlertsResponse agrupa os alertas com a contagem de não lidos
type AlertsResponse struct {
	Alerts      []AlertRecord `json:"alerts"`
	UnreadCount int           `json:"unread_count"`
}
