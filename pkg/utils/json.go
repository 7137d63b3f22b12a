package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor (ou JSON cru em []byte) com indentação.
// Em caso de erro devolve string vazia.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, raw, "", "\t"); err != nil {
		return ""
	}

	return out.String()
}
