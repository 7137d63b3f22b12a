// Package query implementa o motor de consulta da tabela de campanhas:
// filtro, ordenação estável e paginação sobre as linhas em memória.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/vfg2006/analytics-hub/internal/domain"
)

// DefaultPageSize é o tamanho fixo de página da tabela
const DefaultPageSize = 5

// FilterAll desativa o filtro de status ou plataforma
const FilterAll = "all"

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Invert devolve a direção oposta
func (d SortDirection) Invert() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortField identifica uma coluna da tabela de campanhas
type SortField string

const (
	SortByID          SortField = "id"
	SortByCampaign    SortField = "campaign"
	SortByPlatform    SortField = "platform"
	SortByImpressions SortField = "impressions"
	SortByClicks      SortField = "clicks"
	SortByCTR         SortField = "ctr"
	SortBySpend       SortField = "spend"
	SortByConversions SortField = "conversions"
	SortByROAS        SortField = "roas"
	SortByStatus      SortField = "status"
	SortByDate        SortField = "date"
)

// sortKey extrai o valor de uma coluna. Colunas numéricas preenchem num,
// as demais preenchem text.
type sortKey struct {
	numeric bool
	num     float64
	text    string
}

var sortKeys = map[SortField]func(domain.CampaignRow) sortKey{
	SortByID:          func(r domain.CampaignRow) sortKey { return textKey(r.ID) },
	SortByCampaign:    func(r domain.CampaignRow) sortKey { return textKey(r.Campaign) },
	SortByPlatform:    func(r domain.CampaignRow) sortKey { return textKey(r.Platform) },
	SortByImpressions: func(r domain.CampaignRow) sortKey { return numKey(float64(r.Impressions)) },
	SortByClicks:      func(r domain.CampaignRow) sortKey { return numKey(float64(r.Clicks)) },
	SortByCTR:         func(r domain.CampaignRow) sortKey { return numKey(r.CTR) },
	SortBySpend:       func(r domain.CampaignRow) sortKey { return numKey(r.Spend) },
	SortByConversions: func(r domain.CampaignRow) sortKey { return numKey(float64(r.Conversions)) },
	SortByROAS:        func(r domain.CampaignRow) sortKey { return numKey(r.ROAS) },
	SortByStatus:      func(r domain.CampaignRow) sortKey { return textKey(string(r.Status)) },
	SortByDate:        func(r domain.CampaignRow) sortKey { return textKey(r.Date) },
}

func textKey(s string) sortKey { return sortKey{text: strings.ToLower(s)} }
func numKey(f float64) sortKey { return sortKey{numeric: true, num: f} }

// IsValid indica se o campo é uma coluna conhecida
func (f SortField) IsValid() bool {
	_, ok := sortKeys[f]
	return ok
}

// Query é o estado da consulta de uma sessão de visualização
type Query struct {
	SearchTerm     string        `json:"search_term"`
	StatusFilter   string        `json:"status_filter"`   // vazio ou "all" desativa
	PlatformFilter string        `json:"platform_filter"` // vazio ou "all" desativa
	SortField      SortField     `json:"sort_field"`
	SortDirection  SortDirection `json:"sort_direction"`
	Page           int           `json:"page"` // começa em 1
	PageSize       int           `json:"page_size"`
}

// DefaultQuery reproduz o estado inicial da tabela: data decrescente, página 1
func DefaultQuery() Query {
	return Query{
		StatusFilter:   FilterAll,
		PlatformFilter: FilterAll,
		SortField:      SortByDate,
		SortDirection:  SortDesc,
		Page:           1,
		PageSize:       DefaultPageSize,
	}
}

// ToggleSort aplica um clique no cabeçalho da coluna: a mesma coluna inverte a
// direção, uma coluna nova começa em ordem crescente. A página volta para 1.
func (q Query) ToggleSort(field SortField) Query {
	if q.SortField == field {
		q.SortDirection = q.SortDirection.Invert()
	} else {
		q.SortField = field
		q.SortDirection = SortAsc
	}
	q.Page = 1
	return q
}

// Validate verifica os parâmetros de configuração da consulta
func (q Query) Validate() error {
	if !q.SortField.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownSortField, q.SortField)
	}
	if q.SortDirection != SortAsc && q.SortDirection != SortDesc {
		return fmt.Errorf("%w: %q", ErrInvalidSortDirection, q.SortDirection)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, q.PageSize)
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, q.Page)
	}
	return nil
}

// Result é a visão filtrada, ordenada e paginada
type Result struct {
	Rows         []domain.CampaignRow `json:"rows"`
	TotalMatches int                  `json:"total_matches"`
	TotalPages   int                  `json:"total_pages"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	From         int                  `json:"from"` // posição 1-indexada do primeiro item visível, 0 se vazio
	To           int                  `json:"to"`
}

// Run aplica filtro, ordenação e paginação. rows nunca é alterado.
func Run(rows []domain.CampaignRow, q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	filtered := Filter(rows, q)
	Sort(filtered, q.SortField, q.SortDirection)

	visible := Paginate(filtered, q.Page, q.PageSize)

	result := Result{
		Rows:         visible,
		TotalMatches: len(filtered),
		TotalPages:   TotalPages(len(filtered), q.PageSize),
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
	// Uma página visível garante que (Page-1)*PageSize < TotalMatches
	if len(visible) > 0 {
		result.From = (q.Page-1)*q.PageSize + 1
		result.To = result.From + len(visible) - 1
	}

	return result, nil
}

// Matches avalia o predicado de filtro da consulta para uma linha
func Matches(row domain.CampaignRow, q Query) bool {
	if q.SearchTerm != "" {
		term := strings.ToLower(q.SearchTerm)
		if !strings.Contains(strings.ToLower(row.Campaign), term) &&
			!strings.Contains(strings.ToLower(row.Platform), term) {
			return false
		}
	}

	if !isUnset(q.StatusFilter) && string(row.Status) != q.StatusFilter {
		return false
	}

	if !isUnset(q.PlatformFilter) && row.Platform != q.PlatformFilter {
		return false
	}

	return true
}

func isUnset(filter string) bool {
	return filter == "" || filter == FilterAll
}

// Filter devolve uma nova fatia com as linhas que satisfazem a consulta,
// preservando a ordem original
func Filter(rows []domain.CampaignRow, q Query) []domain.CampaignRow {
	out := make([]domain.CampaignRow, 0, len(rows))
	for _, row := range rows {
		if Matches(row, q) {
			out = append(out, row)
		}
	}
	return out
}

// Sort ordena rows no lugar de forma estável. Empates mantêm a ordem relativa
// de entrada. Campos desconhecidos deixam a fatia como está.
func Sort(rows []domain.CampaignRow, field SortField, direction SortDirection) {
	key, ok := sortKeys[field]
	if !ok {
		return
	}

	slices.SortStableFunc(rows, func(a, b domain.CampaignRow) int {
		c := compareKeys(key(a), key(b))
		if direction == SortDesc {
			return -c
		}
		return c
	})
}

func compareKeys(a, b sortKey) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.num, b.num)
	}
	return strings.Compare(a.text, b.text)
}

// Paginate devolve a página 1-indexada. Páginas além da última resultam em
// fatia vazia; o número da página nunca é ajustado aqui. A página é comparada
// com o total antes da multiplicação, então valores enormes não estouram int.
func Paginate(rows []domain.CampaignRow, page, pageSize int) []domain.CampaignRow {
	if page < 1 || page > TotalPages(len(rows), pageSize) {
		return []domain.CampaignRow{}
	}

	start := (page - 1) * pageSize

	end := start + min(pageSize, len(rows)-start)

	out := make([]domain.CampaignRow, end-start)
	copy(out, rows[start:end])
	return out
}

// TotalPages calcula ceil(matches/pageSize), com zero páginas quando não há resultados
func TotalPages(matches, pageSize int) int {
	if matches <= 0 || pageSize <= 0 {
		return 0
	}
	pages := matches / pageSize
	if matches%pageSize != 0 {
		pages++
	}
	return pages
}

// ClampPage ajusta a página ao intervalo [1, totalPages]. Cabe ao chamador
// usar quando o total de páginas encolhe após um filtro.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	return min(page, totalPages)
}

// Platforms lista as plataformas distintas na ordem da primeira ocorrência
func Platforms(rows []domain.CampaignRow) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Platform]; ok {
			continue
		}
		seen[row.Platform] = struct{}{}
		out = append(out, row.Platform)
	}
	return out
}
