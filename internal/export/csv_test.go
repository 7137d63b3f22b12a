package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/domain"
)

func TestWriteCampaignsCSV(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.CampaignRow
		want string
	}{
		{
			name: "Sem linhas",
			rows: nil,
			want: "Campaign,Platform,Impressions,CTR,Spend,ROAS,Status\n",
		},
		{
			name: "Primeiras campanhas padrão",
			rows: domain.DefaultCampaigns()[:2],
			want: "Campaign,Platform,Impressions,CTR,Spend,ROAS,Status\n" +
				"Summer Sale 2024,Google Ads,125000,7,12500,4.2,active\n" +
				"Brand Awareness Q1,Facebook,98000,6,8900,3.1,active\n",
		},
		{
			name: "Campo com vírgula é escapado",
			rows: []domain.CampaignRow{{Campaign: "Sale, Winter", Platform: "TikTok", Impressions: 10, CTR: 1.25, Spend: 99.5, ROAS: 2, Status: domain.CampaignStatusPaused}},
			want: "Campaign,Platform,Impressions,CTR,Spend,ROAS,Status\n" +
				"\"Sale, Winter\",TikTok,10,1.25,99.5,2,paused\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCampaignsCSV(&buf, tt.rows))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCampaignsCSV_AllRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCampaignsCSV(&buf, domain.DefaultCampaigns()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "Mobile App Install,TikTok,112000,8,11200,4.8,active", lines[8])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disco cheio") }

func TestWriteCampaignsCSV_WriterError(t *testing.T) {
	err := WriteCampaignsCSV(failingWriter{}, domain.DefaultCampaigns())
	assert.Error(t, err)
}
