package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/sneaker-store/docs"
	"github.com/SergeyBogomolovv/sneaker-store/internal/app"
	"github.com/SergeyBogomolovv/sneaker-store/internal/authclient"
	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/dedup"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/events"
	"github.com/SergeyBogomolovv/sneaker-store/internal/handler"
	"github.com/SergeyBogomolovv/sneaker-store/internal/payment"
	"github.com/SergeyBogomolovv/sneaker-store/internal/postgres"
	"github.com/SergeyBogomolovv/sneaker-store/internal/repo"
	"github.com/SergeyBogomolovv/sneaker-store/internal/service"
	"github.com/SergeyBogomolovv/sneaker-store/internal/shipping"
	"github.com/SergeyBogomolovv/sneaker-store/internal/tracing"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/cache"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Sneaker Store API
// @version         1.0
// @description     Оформление заказов, оплата и доставка магазина кроссовок
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tp, err := tracing.New(ctx, conf.Tracing, conf.Env)
	panicIfErr("failed to init tracing", err)

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	readCache := cache.NewLRUCache("storefront", conf.Cache.Capacity, conf.Cache.TTL)

	mockCarrier := shipping.NewMock()
	carrier := newCarrier(logger, conf.EasyPost, mockCarrier)
	gateway := newGateway(logger, conf.Stripe)
	publisher := newPublisher(logger, conf.Kafka)
	deduplicator, dedupCache, redisClient := newDeduplicator(ctx, logger, conf)

	if conf.Stripe.WebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET is empty, webhook signatures are not verified")
	}

	pricingService := service.NewPricingService(logger, pgRepo)
	orderService := service.NewOrderService(logger, txManager, pgRepo, pricingService, gateway, publisher, service.OrderConfig{
		FrontendURL: conf.Frontend.URL,
		Currency:    conf.Stripe.Currency,
	})
	checkoutService := service.NewCheckoutService(logger, carrier, mockCarrier)
	queryService := service.NewQueryService(logger, pgRepo)
	storefrontService := service.NewStorefrontService(logger, pgRepo, readCache)
	webhookService := service.NewWebhookService(logger, pgRepo,
		shipping.NewLabelRouter(carrier, mockCarrier), deduplicator, publisher)

	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService, pricingService, queryService),
		handler.NewCheckoutHandler(logger, checkoutService),
		handler.NewWebhookHandler(logger, payment.NewWebhookVerifier(conf.Stripe.WebhookSecret), webhookService, payment.SignatureHeader),
		handler.NewStorefrontHandler(logger, storefrontService),
	)
	if conf.Auth.ProviderURL != "" {
		application.SetHTTPHandlers(handler.NewAuthHandler(logger, authclient.New(logger, conf.Auth)))
	} else {
		logger.Warn("AUTH_PROVIDER_URL is empty, sign in routes are disabled")
	}

	application.SetPingers(db)
	starters := []app.Starter{readCache}
	if dedupCache != nil {
		starters = append(starters, dedupCache)
	}
	application.SetStarters(starters...)

	closers := []app.Closer{publisher, shutdownCloser{tp}}
	if redisClient != nil {
		closers = append(closers, redisClient)
	}
	application.SetClosers(closers...)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// Без ключа EasyPost все ответы перевозчика берутся из заглушки.
func newCarrier(logger *slog.Logger, cfg config.EasyPost, mock *shipping.Mock) service.Carrier {
	ep, err := shipping.NewEasyPost(logger, cfg, nil)
	if errors.Is(err, entities.ErrNotConfigured) {
		logger.Warn("EASYPOST_API_KEY is empty, using mock carrier")
		return mock
	}
	panicIfErr("failed to init easypost", err)
	return ep
}

// Без ключа Stripe покупатель получает ссылку на страницу заказа.
func newGateway(logger *slog.Logger, cfg config.Stripe) service.PaymentGateway {
	gw, err := payment.NewStripeGateway(logger, cfg)
	if errors.Is(err, entities.ErrNotConfigured) {
		logger.Warn("STRIPE_KEY is empty, payment sessions are disabled")
		return nil
	}
	panicIfErr("failed to init stripe", err)
	return gw
}

type publisher interface {
	service.EventPublisher
	Close() error
}

func newPublisher(logger *slog.Logger, cfg config.Kafka) publisher {
	if len(cfg.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS is empty, order events are not published")
		return events.NewNoopPublisher()
	}
	return events.NewKafkaPublisher(logger, cfg)
}

const dedupPingTimeout = 3 * time.Second

// Без Redis обработанные события запоминаются в памяти процесса.
func newDeduplicator(ctx context.Context, logger *slog.Logger, conf config.Config) (service.EventDeduplicator, *cache.LRUCache, *redis.Client) {
	if conf.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR is empty, webhook deduplication is in-memory")
		memory := cache.NewLRUCache("webhook_events", conf.Cache.Capacity, conf.Cache.TTL)
		return dedup.NewMemoryStore(memory), memory, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dedupPingTimeout)
	defer cancel()
	panicIfErr("failed to connect to redis", client.Ping(pingCtx).Err())
	logger.Info("redis connected")

	return dedup.NewRedisStore(client), nil, client
}

type shutdownCloser struct {
	p tracing.Provider
}

func (s shutdownCloser) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.p.Shutdown(ctx)
}
