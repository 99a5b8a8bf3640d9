// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks
//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks
//go:generate mockgen -source=order.go -destination=mocks/order_mock.go -package=mocks
//go:generate mockgen -source=alert.go -destination=mocks/alert_mock.go -package=mocks

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// pqCode retorna o código SQLSTATE quando err é um *pq.Error
func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
