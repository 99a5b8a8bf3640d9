package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	seedDays   = 45
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id         VARCHAR(32) PRIMARY KEY,
		name       TEXT NOT NULL,
		subdomain  TEXT NOT NULL UNIQUE,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             VARCHAR(32) PRIMARY KEY,
		store_id       VARCHAR(32) NOT NULL REFERENCES stores(id),
		name           TEXT NOT NULL,
		price          BIGINT NOT NULL,
		category       TEXT,
		unit           TEXT,
		stock_quantity BIGINT,
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS products_store_active_idx ON products (store_id, is_active)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           VARCHAR(32) PRIMARY KEY,
		store_id     VARCHAR(32) NOT NULL REFERENCES stores(id),
		items        JSONB NOT NULL DEFAULT '[]',
		total_amount BIGINT NOT NULL DEFAULT 0,
		status       TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS orders_store_created_idx ON orders (store_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS stock_alerts (
		id                VARCHAR(32) PRIMARY KEY,
		store_id          VARCHAR(32) NOT NULL REFERENCES stores(id),
		critical_count    INTEGER NOT NULL,
		warning_count     INTEGER NOT NULL,
		overstocked_count INTEGER NOT NULL,
		predictions       JSONB NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS stock_alerts_store_created_idx ON stock_alerts (store_id, created_at DESC)`,
}

// seedProduct é um produto de demonstração com a venda diária esperada
type seedProduct struct {
	Name       string
	Price      int64
	Category   string
	Unit       string
	Stock      int64
	DailySales []int64 // ciclo de quantidades vendidas por dia
}

var demoStore = domain.Store{Name: "Mama Put Groceries", Subdomain: "mamaput", IsActive: true}

var demoProducts = []seedProduct{
	{Name: "Ofada Rice 5kg", Price: 2500, Category: "Grains", Unit: "bag", Stock: 8, DailySales: []int64{3, 2, 4}},
	{Name: "Jollof Rice Mix", Price: 450, Category: "Spices", Unit: "pack", Stock: 40, DailySales: []int64{1, 0, 2}},
	{Name: "Nigerian Red Palm Oil 1L", Price: 800, Category: "Other", Unit: "bottle", Stock: 120, DailySales: []int64{0, 1, 0, 0}},
	{Name: "Egusi Seeds 500g", Price: 650, Category: "Seeds", Unit: "pack", Stock: 300, DailySales: []int64{1, 0, 0}},
	{Name: "Plantain Chips", Price: 150, Category: "Snacks", Unit: "pack", Stock: 60, DailySales: []int64{0}},
	{Name: "Garri Ijebu 2kg", Price: 900, Category: "Grains", Unit: "bag", Stock: 25, DailySales: []int64{2, 3}},
	{Name: "Stockfish Fillet", Price: 5000, Category: "Fish", Unit: "unit", Stock: 4, DailySales: []int64{0, 1}},
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func migrate(ctx context.Context, conn *postgres.Connection) error {
	logrus.Infof("Aplicando %d instruções de schema...", len(schema))
	startTime := time.Now()

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro na instrução de schema %d: %w", i+1, err)
			}
		}
		logrus.Infof("Schema aplicado em %v", time.Since(startTime))
		return nil
	})
}

func hasStores(ctx context.Context, conn *postgres.Connection) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM stores)`).Scan(&exists)
	return exists, err
}

func insertStore(ctx context.Context, tx *sql.Tx, store domain.Store) (string, error) {
	id := generateID()
	_, err := tx.ExecContext(ctx,
		`INSERT INTO stores (id, name, subdomain, is_active) VALUES ($1, $2, $3, $4)`,
		id, store.Name, store.Subdomain, store.IsActive,
	)
	if err != nil {
		return "", fmt.Errorf("erro ao inserir loja %s: %w", store.Name, err)
	}
	logrus.WithField("store_id", id).Infof("Loja %s inserida", store.Name)
	return id, nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, storeID string, products []seedProduct) (map[string]seedProduct, error) {
	logrus.Infof("Iniciando inserção de %d produtos...", len(products))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products (id, store_id, name, price, category, unit, stock_quantity) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar statement para products: %w", err)
	}
	defer stmt.Close()

	inserted := make(map[string]seedProduct, len(products))
	for i, p := range products {
		id := generateID()
		if _, err := stmt.ExecContext(ctx, id, storeID, p.Name, p.Price, p.Category, p.Unit, p.Stock); err != nil {
			return nil, fmt.Errorf("erro ao inserir produto [%d/%d] %s: %w", i+1, len(products), p.Name, err)
		}
		inserted[id] = p
	}

	logrus.Infof("Inserção de produtos concluída: %d", len(inserted))
	return inserted, nil
}

// insertOrders gera um pedido por dia e produto nos últimos seedDays dias, seguindo o ciclo de vendas de cada produto
func insertOrders(ctx context.Context, tx *sql.Tx, storeID string, products map[string]seedProduct, now time.Time) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO orders (id, store_id, items, total_amount, status, created_at) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return 0, fmt.Errorf("erro ao preparar statement para orders: %w", err)
	}
	defer stmt.Close()

	count := 0
	for day := 1; day <= seedDays; day++ {
		createdAt := now.AddDate(0, 0, -day)

		for productID, p := range products {
			quantity := p.DailySales[day%len(p.DailySales)]
			if quantity == 0 {
				continue
			}

			items := domain.LineItems{{ProductID: productID, Name: p.Name, Quantity: quantity, Price: p.Price}}
			encoded, err := json.Marshal(items)
			if err != nil {
				return count, err
			}

			status := "delivered"
			if day%11 == 0 {
				status = repository.OrderStatusCancelled
			}

			if _, err := stmt.ExecContext(ctx, generateID(), storeID, string(encoded), p.Price*quantity, status, createdAt); err != nil {
				return count, fmt.Errorf("erro ao inserir pedido do dia %s: %w", createdAt.Format(time.DateOnly), err)
			}
			count++
		}

		if day%10 == 0 {
			logrus.Infof("Progresso: %d/%d dias processados", day, seedDays)
		}
	}

	return count, nil
}

func seed(ctx context.Context, conn *postgres.Connection) error {
	exists, err := hasStores(ctx, conn)
	if err != nil {
		return fmt.Errorf("erro ao verificar lojas existentes: %w", err)
	}
	if exists {
		logrus.Info("Banco já possui lojas, carga de demonstração ignorada")
		return nil
	}

	startTime := time.Now()
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		storeID, err := insertStore(ctx, tx, demoStore)
		if err != nil {
			return err
		}

		products, err := insertProducts(ctx, tx, storeID, demoProducts)
		if err != nil {
			return err
		}

		orders, err := insertOrders(ctx, tx, storeID, products, time.Now().UTC())
		if err != nil {
			return err
		}

		logrus.Infof("Carga de demonstração concluída em %v: %d produtos, %d pedidos", time.Since(startTime), len(products), orders)
		return nil
	})
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := migrate(ctx, conn); err != nil {
		logrus.WithError(err).Error("Erro ao aplicar schema")
		os.Exit(1)
	}

	if err := seed(ctx, conn); err != nil {
		logrus.WithError(err).Error("Erro na carga de demonstração")
		os.Exit(1)
	}
}
