package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de almacenamiento soportados por STORE_DRIVER.
const (
	StoreMongo    = "mongo"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort        string
	APIPrefix       string
	LogLevel        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	StoreDriver          string
	MongoURL             string
	DBName               string
	SQLitePath           string
	PostgresURL          string
	ListLimit            int
	StoreConnectAttempts int

	RedisAddr string
	CacheTTL  time.Duration

	UseKafka     bool
	KafkaBrokers []string
	KafkaTopic   string
}

// LoadConfig lee la configuración del entorno. Si existe un fichero .env se carga antes;
// las variables ya definidas en el entorno tienen prioridad.
func LoadConfig() *Config {
	_ = godotenv.Load()

	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
			return v
		}
		return fallback
	}
	getDuration := func(key string, fallback time.Duration) time.Duration {
		if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
			return v
		}
		return fallback
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		APIPrefix:       getEnv("API_PREFIX", "/api"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),

		StoreDriver:          strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURL:             getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:               getEnv("DB_NAME", "humanidad_unida"),
		SQLitePath:           getEnv("SQLITE_PATH", "./humanidad_unida.db"),
		PostgresURL:          getEnv("DATABASE_URL", "postgres://localhost:5432/humanidad_unida?sslmode=disable"),
		ListLimit:            getInt("LIST_LIMIT", 1000),
		StoreConnectAttempts: getInt("STORE_CONNECT_ATTEMPTS", 3),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDuration("CACHE_TTL", 30*time.Second),

		UseKafka:     getEnv("USE_KAFKA", "false") == "true",
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "humanidad-requests"),
	}
}

// AllowAllOrigins indica si CORS debe aceptar cualquier origen.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSOrigins) == 0
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
