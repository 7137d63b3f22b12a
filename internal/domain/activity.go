package domain

// ActivityType classifica um evento do feed de atividades
type ActivityType string

const (
	ActivityConversion   ActivityType = "conversion"
	ActivityCampaign     ActivityType = "campaign"
	ActivityAlert        ActivityType = "alert"
	ActivityOptimization ActivityType = "optimization"
)

// ActivityTypes lista os tipos na ordem usada pelo gerador
var ActivityTypes = []ActivityType{
	ActivityConversion,
	ActivityCampaign,
	ActivityAlert,
	ActivityOptimization,
}

// ActivityRecord representa um item do feed de atividades em tempo real
type ActivityRecord struct {
	ID      string       `json:"id" yaml:"id"`
	Type    ActivityType `json:"type" yaml:"type"`
	Message string       `json:"message" yaml:"message"`
	Value   string       `json:"value,omitempty" yaml:"value"` // Valor monetário opcional, ex: $1,250
	Time    string       `json:"time" yaml:"time"`             // Rótulo relativo, ex: "2 min ago"
}
