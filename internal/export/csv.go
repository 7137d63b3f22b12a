// Package export formata a tabela de campanhas para download
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vfg2006/analytics-hub/internal/domain"
)

// FileName é o nome sugerido para o arquivo exportado
const FileName = "campaign_data.csv"

var header = []string{"Campaign", "Platform", "Impressions", "CTR", "Spend", "ROAS", "Status"}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCampaignsCSV escreve o cabeçalho e uma linha por campanha, na ordem recebida
func WriteCampaignsCSV(w io.Writer, rows []domain.CampaignRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Campaign,
			row.Platform,
			strconv.Itoa(row.Impressions),
			formatFloat(row.CTR),
			formatFloat(row.Spend),
			formatFloat(row.ROAS),
			string(row.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever campanha %s no CSV: %w", row.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
