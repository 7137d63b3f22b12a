package domain

// CampaignStatus representa o status de uma campanha na tabela
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// IsValid indica se o status é um dos valores conhecidos
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// CampaignRow é uma linha da tabela de campanhas. Linhas são imutáveis:
// o motor de consulta só produz visões sobre elas.
type CampaignRow struct {
	ID          string         `json:"id" yaml:"id"`
	Campaign    string         `json:"campaign" yaml:"campaign"`
	Platform    string         `json:"platform" yaml:"platform"`
	Impressions int            `json:"impressions" yaml:"impressions"`
	Clicks      int            `json:"clicks" yaml:"clicks"`
	CTR         float64        `json:"ctr" yaml:"ctr"`
	Spend       float64        `json:"spend" yaml:"spend"`
	Conversions int            `json:"conversions" yaml:"conversions"`
	ROAS        float64        `json:"roas" yaml:"roas"`
	Status      CampaignStatus `json:"status" yaml:"status"`
	Date        string         `json:"date" yaml:"date"` // Formato yyyy-mm-dd
}
