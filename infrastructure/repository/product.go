package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

const productsTable = "products"

type ProductRepository interface {
	ListActiveByStore(ctx context.Context, storeID string) ([]*domain.Product, error)
	UpdatePrice(ctx context.Context, storeID, productID string, price int64) error
	UpdateCategory(ctx context.Context, storeID, productID, category string) error
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func listActiveProductsQuery(storeID string) (string, []any, error) {
	return psql.
		Select(
			"p.id",
			"p.store_id",
			"p.name",
			"p.price",
			"COALESCE(p.category, '')",
			"COALESCE(p.unit, '')",
			"p.stock_quantity",
			"p.is_active",
			"p.created_at",
			"p.updated_at",
		).
		From(productsTable + " p").
		Where(squirrel.Eq{"p.store_id": storeID, "p.is_active": true}).
		OrderBy("p.created_at ASC", "p.id ASC").
		ToSql()
}

func (r *productRepository) ListActiveByStore(ctx context.Context, storeID string) ([]*domain.Product, error) {
	query, args, err := listActiveProductsQuery(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produtos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar produtos da loja %s", storeID)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de produtos")
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}
	var stock sql.NullInt64

	err := rows.Scan(
		&product.ID,
		&product.StoreID,
		&product.Name,
		&product.Price,
		&product.Category,
		&product.Unit,
		&stock,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if stock.Valid {
		product.StockQuantity = &stock.Int64
	}

	return product, nil
}

func updateProductQuery(storeID, productID, column string, value any) (string, []any, error) {
	return psql.
		Update(productsTable).
		Set(column, value).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": productID, "store_id": storeID}).
		ToSql()
}

func (r *productRepository) UpdatePrice(ctx context.Context, storeID, productID string, price int64) error {
	query, args, err := updateProductQuery(storeID, productID, "price", price)
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de preço")
	}
	return r.execUpdate(ctx, query, args, productID)
}

func (r *productRepository) UpdateCategory(ctx context.Context, storeID, productID, category string) error {
	query, args, err := updateProductQuery(storeID, productID, "category", category)
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de categoria")
	}
	return r.execUpdate(ctx, query, args, productID)
}

func (r *productRepository) execUpdate(ctx context.Context, query string, args []any, productID string) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar produto %s", productID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
