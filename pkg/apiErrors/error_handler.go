package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado na rota

	// Erros de recurso (3000-3999)
	ErrResourceNotFound = "RES_001" // Recurso não encontrado

	// Erros de estado (4000-4999)
	ErrOperationInProgress = "STA_001" // Operação já em andamento
	ErrOperationDisabled   = "STA_002" // Operação indisponível nesta instância

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrCommunication  = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrOperationInProgress: http.StatusConflict,
	ErrOperationDisabled:   http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteAPIError(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteAPIError escreve um APIError já montado, com o status do seu código
func WriteAPIError(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
