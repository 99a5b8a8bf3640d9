package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AlertRepository interface {
	Save(ctx context.Context, alert *domain.StockAlert) error
}

type alertRepository struct {
	conn postgres.Queryer
}

func NewAlertRepository(conn postgres.Queryer) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func insertAlertQuery(alert *domain.StockAlert, predictions []byte) (string, []any, error) {
	return psql.
		Insert("stock_alerts").
		Columns("id", "store_id", "critical_count", "warning_count", "overstocked_count", "predictions", "created_at").
		Values(
			alert.ID,
			alert.StoreID,
			alert.CriticalCount,
			alert.WarningCount,
			alert.OverstockedCount,
			string(predictions),
			alert.CreatedAt,
		).
		ToSql()
}

// Save persiste o snapshot de alerta de estoque. As previsões são gravadas em jsonb.
func (r *alertRepository) Save(ctx context.Context, alert *domain.StockAlert) error {
	predictions, err := json.Marshal(alert.Predictions)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar previsões do alerta")
	}

	query, args, err := insertAlertQuery(alert, predictions)
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de alerta")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		switch pqCode(err) {
		case pqForeignKeyViolation:
			return ErrStoreNotFound
		case pqUniqueViolation:
			return errors.Wrapf(err, "alerta %s já registrado", alert.ID)
		}
		return errors.Wrapf(err, "erro ao salvar alerta da loja %s", alert.StoreID)
	}

	return nil
}
