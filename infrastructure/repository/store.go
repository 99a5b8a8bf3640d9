package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

const storesTable = "stores s"

type StoreRepository interface {
	ListActiveStores(ctx context.Context) ([]*domain.Store, error)
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func storeSelect() squirrel.SelectBuilder {
	return psql.
		Select("s.id", "s.name", "s.subdomain", "s.is_active", "s.created_at").
		From(storesTable)
}

func (r *storeRepository) ListActiveStores(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := storeSelect().
		Where(squirrel.Eq{"s.is_active": true}).
		OrderBy("s.created_at ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de lojas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lojas ativas")
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Subdomain, &store.IsActive, &store.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear loja")
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de lojas")
	}

	return stores, nil
}

func (r *storeRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query, args, err := storeSelect().
		Where(squirrel.Eq{"s.id": storeID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de loja")
	}

	store := &domain.Store{}
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&store.ID, &store.Name, &store.Subdomain, &store.IsActive, &store.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, errors.Wrapf(err, "erro ao buscar loja %s", storeID)
	}

	return store, nil
}
