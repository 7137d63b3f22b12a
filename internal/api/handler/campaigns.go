package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/export"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-hub/pkg/apiErrors"
)

// parseCampaignQuery monta a consulta a partir da query string. Parâmetros
// ausentes assumem o estado inicial da tabela.
func parseCampaignQuery(values url.Values) (query.Query, error) {
	q := query.DefaultQuery()
	q.PageSize = 0

	q.SearchTerm = values.Get("search")
	if status := values.Get("status"); status != "" {
		q.StatusFilter = status
	}
	if platform := values.Get("platform"); platform != "" {
		q.PlatformFilter = platform
	}
	if sort := values.Get("sort"); sort != "" {
		q.SortField = query.SortField(sort)
	}
	if direction := values.Get("direction"); direction != "" {
		q.SortDirection = query.SortDirection(direction)
	}

	if page := values.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return q, fmt.Errorf("page inválido: %q", page)
		}
		q.Page = n
	}

	if pageSize := values.Get("page_size"); pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil {
			return q, fmt.Errorf("page_size inválido: %q", pageSize)
		}
		q.PageSize = n
	}

	return q, nil
}

func ListCampaigns(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q, err := parseCampaignQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.QueryCampaigns(q)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ListPlatforms(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"platforms": service.ListPlatforms(),
		})
	})
}

// ExportCampaigns devolve o CSV completo da tabela como anexo
func ExportCampaigns(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportCampaigns")

		// Gera em memória para poder responder com erro antes do primeiro byte
		var buf bytes.Buffer
		if err := service.ExportCampaigns(&buf); err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar CSV")
		}
	})
}
