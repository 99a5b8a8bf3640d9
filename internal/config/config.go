package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Intelligence   Intelligence   `mapstructure:",squash"`
	StockAlertSync StockAlertSync `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_ssl_mode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Enabled   bool   `mapstructure:"redis_enabled"`
	Addr      string `mapstructure:"redis_addr"`
	Password  string `mapstructure:"redis_password"`
	DB        int    `mapstructure:"redis_db"`
	KeyPrefix string `mapstructure:"redis_key_prefix"`
}

// Intelligence sobrescreve as constantes do motor. Valores zero mantêm o padrão.
type Intelligence struct {
	WindowDays             int           `mapstructure:"intelligence_window_days"`
	CurrencySymbol         string        `mapstructure:"intelligence_currency_symbol"`
	CacheTTL               time.Duration `mapstructure:"intelligence_cache_ttl"`
	PricingLimit           int           `mapstructure:"intelligence_pricing_limit"`
	StockLimit             int           `mapstructure:"intelligence_stock_limit"`
	CategoryLimit          int           `mapstructure:"intelligence_category_limit"`
	HighDemandIncreaseRate float64       `mapstructure:"intelligence_high_demand_increase_rate"`
	SlowMoverDiscountRate  float64       `mapstructure:"intelligence_slow_mover_discount_rate"`
	DeadStockDiscountRate  float64       `mapstructure:"intelligence_dead_stock_discount_rate"`
	CriticalDays           int64         `mapstructure:"intelligence_critical_days"`
	WarningDays            int64         `mapstructure:"intelligence_warning_days"`
	OverstockDays          int64         `mapstructure:"intelligence_overstock_days"`
	ReorderSupplyDays      float64       `mapstructure:"intelligence_reorder_supply_days"`
	RulesFile              string        `mapstructure:"intelligence_rules_file"`

	Rules *Rules `mapstructure:"-"`
}

type StockAlertSync struct {
	CronSchedule      string `mapstructure:"stock_alert_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"stock_alert_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"stock_alert_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSL_MODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "inventory-intelligence")

	viper.SetDefault("INTELLIGENCE_WINDOW_DAYS", 30)
	viper.SetDefault("INTELLIGENCE_CURRENCY_SYMBOL", "£")
	viper.SetDefault("INTELLIGENCE_CACHE_TTL", "10m")
	viper.SetDefault("INTELLIGENCE_PRICING_LIMIT", 20)
	viper.SetDefault("INTELLIGENCE_STOCK_LIMIT", 0)
	viper.SetDefault("INTELLIGENCE_CATEGORY_LIMIT", 0)
	viper.SetDefault("INTELLIGENCE_HIGH_DEMAND_INCREASE_RATE", 0)
	viper.SetDefault("INTELLIGENCE_SLOW_MOVER_DISCOUNT_RATE", 0)
	viper.SetDefault("INTELLIGENCE_DEAD_STOCK_DISCOUNT_RATE", 0)
	viper.SetDefault("INTELLIGENCE_CRITICAL_DAYS", 0)
	viper.SetDefault("INTELLIGENCE_WARNING_DAYS", 0)
	viper.SetDefault("INTELLIGENCE_OVERSTOCK_DAYS", 0)
	viper.SetDefault("INTELLIGENCE_REORDER_SUPPLY_DAYS", 0)
	viper.SetDefault("INTELLIGENCE_RULES_FILE", "")

	viper.SetDefault("STOCK_ALERT_SYNC_CRON", "0 7 * * *")      // Todos os dias às 7h da manhã
	viper.SetDefault("STOCK_ALERT_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 lojas processadas em paralelo
	viper.SetDefault("STOCK_ALERT_SYNC_ENABLED", false)         // Habilitar alertas de estoque

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Intelligence.RulesFile != "" {
		rules, err := LoadRules(config.Intelligence.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar regras de inteligência: %w", err)
		}
		config.Intelligence.Rules = rules
		logrus.Infof("Regras de inteligência carregadas de %s", config.Intelligence.RulesFile)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// Rules são as tabelas de faixa de mercado e palavras-chave lidas do arquivo de regras
type Rules struct {
	MarketPriceRanges map[string]domain.MarketPriceRange
	CategoryKeywords  []domain.CategoryKeywords
}

type marketRangeEntry struct {
	Category                string `mapstructure:"category"`
	domain.MarketPriceRange `mapstructure:",squash"`
}

// LoadRules lê o arquivo de regras (YAML ou JSON) com uma instância própria do viper.
// As faixas são uma lista com a categoria em cada item, pois o viper não preserva
// maiúsculas em chaves de mapa.
func LoadRules(path string) (*Rules, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var ranges []marketRangeEntry
	if err := v.UnmarshalKey("market_price_ranges", &ranges); err != nil {
		return nil, err
	}

	var keywords []domain.CategoryKeywords
	if err := v.UnmarshalKey("category_keywords", &keywords); err != nil {
		return nil, err
	}

	rules := &Rules{CategoryKeywords: keywords}
	if len(ranges) > 0 {
		rules.MarketPriceRanges = make(map[string]domain.MarketPriceRange, len(ranges))
		for _, entry := range ranges {
			if entry.Category == "" {
				return nil, fmt.Errorf("faixa de mercado sem categoria em %s", path)
			}
			rules.MarketPriceRanges[entry.Category] = entry.MarketPriceRange
		}
	}

	return rules, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
