package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Validação", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "Não encontrado", code: ErrResourceNotFound, wantStatus: http.StatusNotFound},
		{name: "Em andamento", code: ErrOperationInProgress, wantStatus: http.StatusConflict},
		{name: "Indisponível", code: ErrOperationDisabled, wantStatus: http.StatusServiceUnavailable},
		{name: "Código desconhecido", code: "XXX_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrInvalidRequest)
	assert.Equal(t, ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}

func TestWriteAPIError_FromError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteAPIError(rec, FromError(errors.New("página inválida"), ErrInvalidRequest))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidRequest, body.Code)
	assert.Equal(t, "página inválida", body.Message)
}
