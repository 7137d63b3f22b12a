package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
)

func ListActivity(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"activity": service.GetActivity(),
		})
	})
}

func ListAlerts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetAlerts())
	})
}

func MarkAlertRead(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alertID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkAlertRead(alertID); err != nil {
			logrus.WithField("alert_id", alertID).WithError(err).Warn("Erro ao marcar alerta como lido")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, service.GetAlerts())
	})
}

func DismissAlert(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alertID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DismissAlert(alertID); err != nil {
			logrus.WithField("alert_id", alertID).WithError(err).Warn("Erro ao dispensar alerta")
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func MarkAllAlertsRead(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		updated := service.MarkAllAlertsRead()

		writeJSON(w, http.StatusOK, map[string]any{
			"updated": updated,
		})
	})
}
