package advising

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de inteligência de estoque
var (
	// Erros de validação
	ErrStoreIDRequired  = errors.New("store ID is required")
	ErrSnapshotRequired = errors.New("snapshot with products is required")
	ErrNoActiveProducts = errors.New("snapshot has no active products (is_active must be true)")

	// Erros de recurso
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")

	// Erros de banco de dados
	ErrFetchCatalog  = errors.New("error fetching catalog from database")
	ErrFetchOrders   = errors.New("error fetching orders from database")
	ErrUpdateProduct = errors.New("error updating product")

	// Erros de cálculo
	ErrFingerprint = errors.New("error computing snapshot fingerprint")
)

// AdvisingError é um erro com o código de API e a loja envolvida
type AdvisingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID string // ID da loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *AdvisingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdvisingError) Unwrap() error {
	return e.Err
}

func NewAdvisingError(err error, code string, storeID string, details string) *AdvisingError {
	return &AdvisingError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
