package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

// OrderStatusCancelled não entra no histórico de vendas
const OrderStatusCancelled = "cancelled"

type OrderRepository interface {
	ListSince(ctx context.Context, storeID string, since time.Time) ([]*domain.OrderRecord, error)
}

type orderRepository struct {
	conn postgres.Queryer
}

func NewOrderRepository(conn postgres.Queryer) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func listOrdersSinceQuery(storeID string, since time.Time) (string, []any, error) {
	return psql.
		Select("o.id", "o.store_id", "o.items", "o.total_amount", "o.created_at", "o.status").
		From("orders o").
		Where(squirrel.Eq{"o.store_id": storeID}).
		Where(squirrel.GtOrEq{"o.created_at": since}).
		Where(squirrel.NotEq{"o.status": OrderStatusCancelled}).
		OrderBy("o.created_at ASC", "o.id ASC").
		ToSql()
}

// ListSince busca os pedidos da loja criados a partir de since.
// Itens em jsonb malformados resultam em pedido sem itens.
func (r *orderRepository) ListSince(ctx context.Context, storeID string, since time.Time) ([]*domain.OrderRecord, error) {
	query, args, err := listOrdersSinceQuery(storeID, since)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de pedidos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar pedidos da loja %s", storeID)
	}
	defer rows.Close()

	orders := make([]*domain.OrderRecord, 0)
	for rows.Next() {
		order := &domain.OrderRecord{}
		var items []byte

		if err := rows.Scan(&order.ID, &order.StoreID, &items, &order.TotalAmount, &order.CreatedAt, &order.Status); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido")
		}

		// LineItems nunca retorna erro; entradas inválidas viram lista vazia
		_ = order.Items.UnmarshalJSON(items)
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de pedidos")
	}

	return orders, nil
}
