package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	analyticsApp "github.com/davicafu/humanidadunida/internal/analytics/application"
	analyticsHttp "github.com/davicafu/humanidadunida/internal/analytics/infra/inbound/http"
	"github.com/davicafu/humanidadunida/internal/config"
	"github.com/davicafu/humanidadunida/internal/notifications"
	"github.com/davicafu/humanidadunida/internal/reference"
	"github.com/davicafu/humanidadunida/internal/requests/application"
	requestsHttp "github.com/davicafu/humanidadunida/internal/requests/infra/inbound/http"
	"github.com/davicafu/humanidadunida/internal/server"
	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	infraEvents "github.com/davicafu/humanidadunida/internal/shared/infra/events"
	"github.com/davicafu/humanidadunida/internal/shared/infra/metrics"
	sharedBus "github.com/davicafu/humanidadunida/internal/shared/infra/platform/bus"
	sharedCache "github.com/davicafu/humanidadunida/internal/shared/infra/platform/cache"
	"github.com/davicafu/humanidadunida/internal/shared/infra/platform/store/cached"
	"github.com/davicafu/humanidadunida/internal/shared/infra/platform/store/memory"
	"github.com/davicafu/humanidadunida/internal/shared/infra/platform/store/mongodb"
	"github.com/davicafu/humanidadunida/internal/shared/infra/platform/store/sqlstore"
	"github.com/davicafu/humanidadunida/internal/shared/infra/utils"
	"github.com/davicafu/humanidadunida/pkg/logger"
)

const (
	consumerGroup   = "humanidadunida-notifications"
	connectDelay    = 2 * time.Second
	closeTimeout    = 5 * time.Second
	memoryBusBuffer = 64
)

// openedStore es el store elegido junto con su cierre y, si lo tiene, su ping.
// shared indica que otras réplicas pueden escribir en el mismo store.
type openedStore struct {
	store  sharedDomain.RecordStore
	pinger server.Pinger
	close  func(ctx context.Context) error
	shared bool
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel)
	log := logger.Logger()
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------------- Store ----------------
	opened, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("no se pudo abrir el store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		closeCtx, done := context.WithTimeout(context.Background(), closeTimeout)
		defer done()
		if err := opened.close(closeCtx); err != nil {
			log.Warn("error cerrando el store", zap.Error(err))
		}
	}()

	// ---------------- Cache ----------------
	// Sin Redis, la cache en memoria sólo se usa con stores locales al proceso:
	// con Mongo o Postgres otra réplica podría escribir sin invalidarla.
	store := opened.store
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		if opened.shared {
			log.Warn("⚠️ Redis no disponible, listados sin cache", zap.Error(err))
		} else {
			log.Warn("⚠️ Redis no disponible, cache en memoria", zap.Error(err))
			memCache := sharedCache.NewInMemoryCache(cfg.CacheTTL, 3*cfg.CacheTTL)
			defer memCache.Stop()
			store = cached.NewStore(opened.store, memCache, cfg.CacheTTL, log)
		}
	} else {
		log.Info("✅ Redis conectado, cache habilitado")
		defer rdb.Close()
		store = cached.NewStore(opened.store, sharedCache.NewRedisCache(rdb, cfg.CacheTTL, "humanidadunida:"), cfg.CacheTTL, log)
	}

	// ---------------- Events ---------------
	notifier := notifications.NewRequestNotifier(log)
	var publisher sharedBus.EventBus

	if cfg.UseKafka {
		log.Info("🚀 Usando Kafka como bus de eventos", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))

		kafkaPublisher := infraEvents.NewKafkaPublisher(infraEvents.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher

		consumer := infraEvents.NewConsumerAdapter(
			infraEvents.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, consumerGroup), notifier, log)
		defer consumer.Close()
		consumer.Start(ctx)
	} else {
		log.Info("⚡️ Usando bus de eventos en memoria (canales de Go)")

		bus := infraEvents.NewInMemoryEventBus(cfg.KafkaTopic)
		defer bus.Close()
		publisher = bus

		log.Info("🎧 Iniciando listener en memoria para notificaciones")
		infraEvents.BackgroundConsumerChan(ctx, bus.Subscribe(memoryBusBuffer), notifier)
	}

	// --------------- Servicios -------------
	catalog, err := reference.Load()
	if err != nil {
		log.Fatal("contenido de referencia inválido", zap.Error(err))
	}

	services := application.NewServices(application.Deps{
		Store:     store,
		Events:    publisher,
		Recorder:  metrics.PrometheusRecorder{},
		ListLimit: cfg.ListLimit,
		Log:       log,
	})
	dashboard := analyticsApp.NewDashboardService(store, log)

	// ---------------- HTTP -----------------
	router := server.NewRouter(cfg, log, server.Routes{
		Requests:  requestsHttp.NewHandlers(services, catalog, log),
		Dashboard: analyticsHttp.NewDashboardHandler(dashboard, log),
		Store:     opened.pinger,
	})

	if err := server.New(cfg, log, router).Run(ctx); err != nil {
		log.Error("el servidor terminó con error", zap.Error(err))
	}
	// detiene los consumidores; los defers cierran bus, cache y store
	cancel()
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*openedStore, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		var store *mongodb.Store
		err := utils.Retry(ctx, cfg.StoreConnectAttempts, connectDelay, func() error {
			client, err := mongodb.Connect(ctx, cfg.MongoURL)
			if err != nil {
				log.Warn("MongoDB no disponible, reintentando", zap.Error(err))
				return err
			}
			store, err = mongodb.NewStore(ctx, client, cfg.DBName)
			if err != nil {
				_ = client.Disconnect(ctx)
				log.Warn("MongoDB no responde al ping, reintentando", zap.Error(err))
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		log.Info("✅ MongoDB conectado", zap.String("db", cfg.DBName))
		return &openedStore{store: store, pinger: store, close: store.Close, shared: true}, nil

	case config.StoreSQLite, config.StorePostgres:
		dialect, dsn := sqlstore.SQLite, cfg.SQLitePath
		if cfg.StoreDriver == config.StorePostgres {
			dialect, dsn = sqlstore.Postgres, cfg.PostgresURL
		}
		db, err := sqlstore.Open(dialect, dsn)
		if err != nil {
			return nil, err
		}
		store := sqlstore.NewStore(db, dialect)
		err = utils.Retry(ctx, cfg.StoreConnectAttempts, connectDelay, func() error {
			if err := store.Ping(ctx); err != nil {
				log.Warn("base de datos no disponible, reintentando", zap.String("driver", cfg.StoreDriver), zap.Error(err))
				return err
			}
			return nil
		})
		if err == nil {
			err = store.InitSchema(ctx)
		}
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		log.Info("✅ Store SQL listo", zap.String("driver", cfg.StoreDriver))
		return &openedStore{
			store:  store,
			pinger: store,
			close:  func(context.Context) error { return store.Close() },
			shared: dialect == sqlstore.Postgres,
		}, nil

	case config.StoreMemory:
		log.Warn("⚠️ Store en memoria: los datos se pierden al reiniciar")
		return &openedStore{
			store: memory.NewStore(),
			close: func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.StoreDriver)
}
