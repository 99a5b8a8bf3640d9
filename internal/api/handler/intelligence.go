package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
	"github.com/vfg2006/inventory-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
	"github.com/vfg2006/inventory-intelligence-api/pkg/utils"
)

// GetStoreIntelligence retorna o relatório de inteligência de estoque de uma loja.
// Aceita ?as_of= em RFC3339 ou YYYY-MM-DD para recalcular a janela numa data passada.
func GetStoreIntelligence(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		asOf, err := utils.ParseAsOf(r.URL.Query().Get("as_of"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido, use RFC3339 ou YYYY-MM-DD", nil)
			return
		}

		response, err := service.GetStoreIntelligence(r.Context(), storeID, asOf)
		if err != nil {
			writeAdvisingError(w, r, err, "Erro ao gerar relatório de inteligência")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// ComputeIntelligence calcula o relatório sobre um snapshot enviado no corpo.
// Só entram produtos com "is_active": true; o campo ausente vale false e um snapshot
// sem nenhum produto ativo responde VAL_002.
func ComputeIntelligence(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var snapshot domain.IntelligenceSnapshot
		if !decodeBody(w, r, &snapshot, "Formato de snapshot inválido") {
			return
		}

		response, err := service.ComputeSnapshot(r.Context(), &snapshot)
		if err != nil {
			writeAdvisingError(w, r, err, "Erro ao calcular relatório de inteligência")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// ApplyPriceSuggestion aplica o novo preço aceito pelo lojista
func ApplyPriceSuggestion(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		storeID, productID := params.ByName("id"), params.ByName("product_id")

		var req domain.PriceChangeRequest
		if !decodeBody(w, r, &req, "Formato de requisição inválido") {
			return
		}

		if err := service.ApplyPriceChange(r.Context(), storeID, productID, req.Price); err != nil {
			writeAdvisingError(w, r, err, "Erro ao aplicar preço")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message":    "Preço atualizado com sucesso",
			"product_id": productID,
			"price":      req.Price,
		})
	})
}

// ApplyCategorySuggestion aplica a nova categoria aceita pelo lojista
func ApplyCategorySuggestion(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		storeID, productID := params.ByName("id"), params.ByName("product_id")

		var req domain.CategoryChangeRequest
		if !decodeBody(w, r, &req, "Formato de requisição inválido") {
			return
		}

		if err := service.ApplyCategoryChange(r.Context(), storeID, productID, req.Category); err != nil {
			writeAdvisingError(w, r, err, "Erro ao aplicar categoria")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message":    "Categoria atualizada com sucesso",
			"product_id": productID,
			"category":   req.Category,
		})
	})
}

// decodeBody lê o corpo inteiro e o decodifica em v. Em caso de falha escreve o erro
// de API e retorna false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, message string) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, fmt.Sprintf("Corpo excede o limite de %d bytes", tooLarge.Limit), nil)
			return false
		}
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao ler corpo da requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
		return false
	}

	return true
}

// writeAdvisingError traduz o erro do serviço para a resposta padronizada
func writeAdvisingError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var advisingErr *advising.AdvisingError
	if errors.As(err, &advisingErr) {
		if apiErrors.StatusFor(advisingErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithStore(advisingErr.StoreID).WithError(err).Error(fallback)
			apiErrors.WriteError(w, advisingErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, advisingErr.Code, advisingErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
