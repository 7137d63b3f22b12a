package utils

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace arredonda para uma casa decimal (meio para longe do zero)
func RoundWithOneDecimalPlace(f float64) float64 {
	return decimal.NewFromFloat(f).Round(1).InexactFloat64()
}

// FormatThousands formata um inteiro com separador de milhar, ex: 94,582
func FormatThousands(n int64) string {
	return humanize.Comma(n)
}

// FormatCurrency formata um valor em dólares inteiros, ex: $2,847,950
func FormatCurrency(amount float64) string {
	return "$" + humanize.Comma(decimal.NewFromFloat(amount).Floor().IntPart())
}

// FormatPercent formata uma porcentagem com uma casa decimal, ex: 23.4%
func FormatPercent(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(1) + "%"
}
