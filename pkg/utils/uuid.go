package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um ID aleatório com fonte criptográfica
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GenerateTimeID gera um ID derivado do instante informado. O sufixo usa o
// mesmo alfabeto de GenerateID, mas é sorteado por intn para que a sequência
// seja reproduzível a partir de uma semente.
func GenerateTimeID(at time.Time, intn func(n int) int) string {
	suffix := make([]byte, idLength)
	for i := range suffix {
		suffix[i] = characters[intn(len(characters))]
	}

	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + string(suffix)
}
