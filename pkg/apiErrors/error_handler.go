package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPrice        = "VAL_004" // Preço inválido
	ErrInvalidCategory     = "VAL_005" // Categoria inválida
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não suportado pela rota
	ErrPayloadTooLarge     = "VAL_007" // Corpo da requisição acima do limite

	// Erros de recurso
	ErrStoreNotFound   = "RES_001" // Loja não encontrada
	ErrProductNotFound = "RES_002" // Produto não encontrado
	ErrNotFound        = "RES_003" // Rota ou recurso não encontrado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrCacheOperation    = "SRV_003" // Erro de operação de cache
	ErrServiceDisabled   = "SRV_004" // Serviço desabilitado ou indisponível
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidPrice:        http.StatusUnprocessableEntity,
	ErrInvalidCategory:     http.StatusUnprocessableEntity,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrStoreNotFound:       http.StatusNotFound,
	ErrProductNotFound:     http.StatusNotFound,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrCacheOperation:      http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
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
