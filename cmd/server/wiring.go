package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	jwttoken "watchdog/internal/jwt_token"
	"watchdog/internal/notification/email"
	"watchdog/internal/platform/config"
	"watchdog/internal/platform/database"
	"watchdog/internal/platform/health"
	"watchdog/internal/platform/kafka/consumer"
	"watchdog/internal/platform/metrics"
	"watchdog/internal/platform/middleware"
	"watchdog/internal/platform/redis"
	"watchdog/internal/registrar/catalog"
	registrarHandler "watchdog/internal/registrar/handler"
	registrarMetrics "watchdog/internal/registrar/metrics"
	"watchdog/internal/registrar/providers"
	"watchdog/internal/registrar/providers/gandi"
	"watchdog/internal/registrar/providers/ovh"
	registrarService "watchdog/internal/registrar/service"
	"watchdog/internal/registrar/tracer"
	"watchdog/internal/trigger"
	triggerMetrics "watchdog/internal/trigger/metrics"
	"watchdog/internal/watch/store"
)

const operatorAudience = "watchdog-operators"

// repository is the read side used by the trigger handler and the order flow.
type repository interface {
	trigger.WatchListRepository
	trigger.DomainRepository
}

type application struct {
	router   http.Handler
	consumer *consumer.Consumer
	closers  []func() error
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func build(ctx context.Context, cfg config.Server, log *slog.Logger) (*application, error) {
	app := &application{}
	healthHandler := health.New(cfg.Environment)

	repo, err := buildRepository(cfg, log, app, healthHandler)
	if err != nil {
		app.close()
		return nil, err
	}

	registrarM := registrarMetrics.New()
	tldCatalog, err := buildCatalog(ctx, cfg, log, registrarM, app, healthHandler)
	if err != nil {
		app.close()
		return nil, err
	}

	registry, err := buildRegistry(cfg, log)
	if err != nil {
		app.close()
		return nil, err
	}

	svc, err := registrarService.New(registry, tldCatalog, repo,
		registrarService.WithLogger(log),
		registrarService.WithMetrics(registrarM),
		registrarService.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		app.close()
		return nil, err
	}

	if brokers := cfg.Kafka.KafkaBrokerList(); len(brokers) > 0 {
		c, err := buildConsumer(cfg, brokers, repo, log)
		if err != nil {
			app.close()
			return nil, err
		}
		app.consumer = c
		healthHandler.RegisterCheck("kafka", c.Health)
	} else {
		log.Warn("KAFKA_BROKERS not set, trigger consumer disabled")
	}

	app.router = buildRouter(cfg, log, healthHandler, svc)
	return app, nil
}

func buildRepository(cfg config.Server, log *slog.Logger, app *application, h *health.Handler) (repository, error) {
	pool, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if pool == nil {
		log.Warn("DATABASE_URL not set, using in-memory repositories")
		return store.NewInMemoryStore(), nil
	}
	app.closers = append(app.closers, pool.Close)
	h.RegisterCheck("postgres", pool.Health)
	return store.NewPostgres(pool.DB()), nil
}

func buildCatalog(ctx context.Context, cfg config.Server, log *slog.Logger, m *registrarMetrics.Metrics, app *application, h *health.Handler) (*catalog.Catalog, error) {
	var tldStore catalog.Store

	client, err := redis.New(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if client != nil {
		app.closers = append(app.closers, client.Close)
		h.RegisterCheck("redis", client.Health)
		tldStore = catalog.NewRedisStore(client.Client, cfg.Registrar.TLDCacheTTL)
	} else {
		log.Warn("REDIS_URL not set, caching TLD lists in process")
		mem, err := catalog.NewMemoryStore(ctx, cfg.Registrar.TLDCacheTTL)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, mem.Close)
		tldStore = mem
	}

	return catalog.New(tldStore,
		catalog.WithLogger(log),
		catalog.WithMetrics(m),
	)
}

func buildRegistry(cfg config.Server, log *slog.Logger) (*providers.Registry, error) {
	registry := providers.NewRegistry()
	for _, p := range []providers.Provider{
		gandi.New(gandi.Config{
			BaseURL: cfg.Registrar.GandiBaseURL,
			Timeout: cfg.Registrar.HTTPTimeout,
		}, gandi.WithLogger(log)),
		ovh.New(cfg.Registrar.HTTPTimeout, ovh.WithLogger(log)),
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func buildConsumer(cfg config.Server, brokers []string, repo repository, log *slog.Logger) (*consumer.Consumer, error) {
	renderer, err := email.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender, err := email.NewSMTPSender(email.SMTPConfig{
		Host:        cfg.Mailer.Host,
		Port:        cfg.Mailer.Port,
		Username:    cfg.Mailer.Username,
		Password:    cfg.Mailer.Password,
		SenderEmail: cfg.Mailer.SenderEmail,
		SenderName:  cfg.Mailer.SenderName,
	}, renderer, email.WithLogger(log))
	if err != nil {
		return nil, err
	}

	m := triggerMetrics.New()
	dispatcher, err := trigger.NewDispatcher(sender,
		trigger.WithDispatcherLogger(log),
		trigger.WithDispatcherMetrics(m),
	)
	if err != nil {
		return nil, err
	}
	handler, err := trigger.NewHandler(repo, repo, dispatcher,
		trigger.WithLogger(log),
		trigger.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}

	router := consumer.NewRouter(log, consumer.WithSkip(func(err error) bool {
		return errors.Is(err, trigger.ErrSkipped)
	}))
	router.Register(cfg.Kafka.TriggerTopic, consumer.PayloadFunc(trigger.NewMessageHandler(handler, log).HandleMessage))

	return consumer.New(consumer.Config{
		Brokers: brokers,
		GroupID: cfg.Kafka.GroupID,
		Topics:  router.Topics(),
	}, router, log)
}

func buildRouter(cfg config.Server, log *slog.Logger, h *health.Handler, svc *registrarService.Service) http.Handler {
	httpMetrics := metrics.New()
	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, operatorAudience)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(httpMetrics.Instrument)

	h.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/registrar", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwttoken.NewJWTServiceAdapter(jwtService), log))
		registrarHandler.New(svc, log).Register(r)
	})
	return r
}
