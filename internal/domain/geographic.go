package domain

// GeographicEntry representa a performance de um mercado
type GeographicEntry struct {
	Country     string     `json:"country" yaml:"country"`
	Code        string     `json:"code" yaml:"code"`
	Revenue     float64    `json:"revenue" yaml:"revenue"`
	Users       int        `json:"users" yaml:"users"`
	Growth      float64    `json:"growth" yaml:"growth"`
	Coordinates [2]float64 `json:"coordinates" yaml:"coordinates"` // longitude, latitude
}

// HeatmapCell é a atividade de uma hora em um dia da semana
type HeatmapCell struct {
	Hour        int    `json:"hour" yaml:"hour"`
	Day         string `json:"day" yaml:"day"`
	Value       int    `json:"value" yaml:"value"`
	Conversions int    `json:"conversions" yaml:"conversions"`
}

// YourBrand é o nome do concorrente que representa a própria marca
const YourBrand = "Your Brand"

// CompetitorEntry representa a participação de mercado de um concorrente
type CompetitorEntry struct {
	Name        string  `json:"name" yaml:"name"`
	MarketShare float64 `json:"market_share" yaml:"market_share"`
	Trend       string  `json:"trend" yaml:"trend"` // up, down, stable
	Change      float64 `json:"change" yaml:"change"`
}
