package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrAlertIDEmpty  = errors.New("alert ID is required")
)

// AlertError é um erro com o contexto do alerta envolvido
type AlertError struct {
	Err     error  // Erro base
	AlertID string // ID do alerta
	Op      string // Operação que falhou (read, dismiss)
}

// Error implementa a interface error
func (e *AlertError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.AlertID, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AlertError) Unwrap() error {
	return e.Err
}

func newAlertError(err error, op, alertID string) *AlertError {
	return &AlertError{Err: err, AlertID: alertID, Op: op}
}
