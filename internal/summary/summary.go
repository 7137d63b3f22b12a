// Package summary contém as reduções numéricas usadas nos resumos do painel.
// Coleções vazias resultam em zero, nunca em NaN.
package summary

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/vfg2006/analytics-hub/internal/query"
)

// Number é qualquer tipo numérico aceito pelas reduções
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum soma o valor selecionado de cada registro
func Sum[T any, N Number](records []T, selector func(T) N) N {
	var total N
	for _, r := range records {
		total += selector(r)
	}
	return total
}

// Average devolve a média aritmética, ou 0 para coleção vazia
func Average[T any, N Number](records []T, selector func(T) N) float64 {
	if len(records) == 0 {
		return 0
	}
	return float64(Sum(records, selector)) / float64(len(records))
}

// Max devolve o maior valor selecionado, ou 0 para coleção vazia
func Max[T any, N Number](records []T, selector func(T) N) N {
	if len(records) == 0 {
		return 0
	}

	best := selector(records[0])
	for _, r := range records[1:] {
		best = max(best, selector(r))
	}
	return best
}

// ArgMax devolve o registro com o maior valor selecionado (o primeiro em caso de empate)
func ArgMax[T any, N Number](records []T, selector func(T) N) (T, bool) {
	var zero T
	if len(records) == 0 {
		return zero, false
	}

	best := 0
	for i := 1; i < len(records); i++ {
		if selector(records[i]) > selector(records[best]) {
			best = i
		}
	}
	return records[best], true
}

// RankOf devolve a posição 1-indexada do primeiro registro que satisfaz
// predicate após ordenar por orderBy na direção indicada. A ordenação é
// estável. ok é false quando nenhum registro satisfaz predicate.
func RankOf[T any, K cmp.Ordered](records []T, predicate func(T) bool, orderBy func(T) K, direction query.SortDirection) (position int, ok bool) {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b T) int {
		c := cmp.Compare(orderBy(a), orderBy(b))
		if direction == query.SortDesc {
			return -c
		}
		return c
	})

	idx := slices.IndexFunc(ordered, predicate)
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}
