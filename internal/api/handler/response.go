package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/internal/scheduler"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-hub/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros do serviço para os códigos da API
func writeServiceError(w http.ResponseWriter, err error) {
	var alertErr *dashboard.AlertError

	switch {
	case errors.Is(err, query.ErrUnknownSortField),
		errors.Is(err, query.ErrInvalidSortDirection),
		errors.Is(err, query.ErrInvalidPage),
		errors.Is(err, query.ErrInvalidPageSize):
		apiErrors.WriteAPIError(w, apiErrors.FromError(err, apiErrors.ErrInvalidRequest))

	case errors.Is(err, dashboard.ErrAlertIDEmpty):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do alerta não informado", nil)

	case errors.As(err, &alertErr) && errors.Is(err, dashboard.ErrAlertNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Alerta não encontrado", map[string]string{
			"alert_id": alertErr.AlertID,
		})

	case errors.Is(err, scheduler.ErrRefreshInFlight):
		apiErrors.WriteError(w, apiErrors.ErrOperationInProgress, "Atualização já em andamento", nil)

	case errors.Is(err, dashboarding.ErrRefreshUnavailable),
		errors.Is(err, scheduler.ErrTickerStopped),
		errors.Is(err, scheduler.ErrTickerNotStarted):
		apiErrors.WriteError(w, apiErrors.ErrOperationDisabled, "Atualização indisponível", nil)

	default:
		logrus.WithError(err).Error("Erro inesperado no serviço do painel")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
