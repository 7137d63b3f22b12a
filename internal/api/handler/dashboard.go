package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
)

func GetMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetMetrics())
	})
}

// RefreshMetrics agenda a atualização manual. A resposta não espera a conclusão.
func RefreshMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshMetrics")

		if err := service.Refresh(); err != nil {
			logrus.WithError(err).Warn("Atualização manual recusada")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":    "Atualização iniciada com sucesso",
			"refreshing": true,
		})
	})
}

func GetTickerStatus(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	})
}
