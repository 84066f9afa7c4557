package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crosscall/internal/audit"
	"crosscall/internal/calling"
	"crosscall/internal/capability"
	"crosscall/internal/carrierconfig"
	"crosscall/internal/companion"
	"crosscall/internal/directory"
	"crosscall/internal/eligibility"
	eligibilitymetrics "crosscall/internal/eligibility/metrics"
	"crosscall/internal/jwtauth"
	"crosscall/internal/platform/config"
	"crosscall/internal/platform/httpserver"
	"crosscall/internal/platform/logger"
	"crosscall/internal/platform/postgres"
	"crosscall/internal/platform/redis"
	"crosscall/internal/toggle"
	togglemetrics "crosscall/internal/toggle/metrics"
	httptransport "crosscall/internal/transport/http"
	"crosscall/pkg/domain"
	"crosscall/pkg/secrets"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Carrier config store: Redis when configured, in-memory otherwise.
	var configs carrierconfig.Store
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		configs = carrierconfig.NewRedis(redisClient.Client)
		log.Info("carrier config store: redis")
	} else {
		memory := carrierconfig.NewMemoryStore()
		seedCarrierConfigs(ctx, memory, cfg.SupportedLines)
		configs = memory
		log.Info("carrier config store: memory")
	}

	// Audit trail: Postgres when configured, memory otherwise; Kafka sink
	// when brokers are set.
	var auditStore audit.Store = audit.NewMemoryStore()
	if cfg.PostgresURL != "" {
		db, err := postgres.Open(cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pgStore := audit.NewPostgres(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("audit schema setup failed", "error", err)
			os.Exit(1)
		}
		auditStore = pgStore
		log.Info("audit store: postgres")
	}

	auditOpts := []audit.PublisherOption{
		audit.WithLogger(log),
		audit.WithAsyncBuffer(256),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic, log)
		if err != nil {
			log.Error("kafka sink setup failed", "error", err)
			os.Exit(1)
		}
		defer sink.Close()
		auditOpts = append(auditOpts, audit.WithSink(sink))
		log.Info("audit sink: kafka", "topic", cfg.Kafka.AuditTopic)
	}
	auditTrail := audit.NewPublisher(auditStore, auditOpts...)
	defer auditTrail.Close()

	// Capability service client over the simulated remote. The async
	// connection callback flips availability once the service is up.
	remote := capability.NewSimulatedService(cfg.SupportedLines...)
	remote.ConnectLatency = cfg.ConnectLatency
	capabilityClient := capability.NewClient(remote, capability.WithLogger(log))
	if err := capabilityClient.Connect(); err != nil {
		log.Warn("capability service connect failed, queries report unsupported", "error", err)
	}

	lines := directory.NewMemoryDirectory()
	seedLines(ctx, lines, auditTrail, cfg.SupportedLines)
	support := companion.NewStaticSupport(cfg.CompanionSupportedLines...)

	evaluator, err := eligibility.New(capabilityClient, lines, support, configs,
		eligibility.WithLogger(log),
		eligibility.WithMetrics(eligibilitymetrics.New()),
	)
	if err != nil {
		log.Error("eligibility service setup failed", "error", err)
		os.Exit(1)
	}

	callingService := calling.NewSimulatedService()
	for _, id := range cfg.SupportedLines {
		callingService.Provision(id, false)
	}
	toggles, err := toggle.New(callingService,
		toggle.WithLogger(log),
		toggle.WithMetrics(togglemetrics.New()),
		toggle.WithAudit(auditTrail),
	)
	if err != nil {
		log.Error("toggle controller setup failed", "error", err)
		os.Exit(1)
	}

	tokens := jwtauth.New(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	secretHash := cfg.AuthClientSecretHash
	if secretHash == "" {
		secret, err := secrets.Generate()
		if err != nil {
			log.Error("client secret generation failed", "error", err)
			os.Exit(1)
		}
		secretHash, err = secrets.Hash(secret)
		if err != nil {
			log.Error("client secret hashing failed", "error", err)
			os.Exit(1)
		}
		// Development convenience only; set AUTH_CLIENT_SECRET_HASH in
		// production so the plaintext secret never hits the logs.
		log.Warn("generated development client secret",
			"client_id", cfg.AuthClientID,
			"client_secret", secret,
		)
	}

	handler := httptransport.New(lines, evaluator, toggles, log)
	authHandler := httptransport.NewAuthHandler(cfg.AuthClientID, secretHash, cfg.TokenTTL, tokens, log)
	router := httptransport.NewRouter(handler, authHandler, jwtauth.NewAdapter(tokens), log)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("crosscall listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// seedLines activates one line per configured capability-supported line so
// the gateway is usable out of the box, leaving an activation record in the
// audit trail. Real deployments replace this with platform-fed provisioning.
func seedLines(ctx context.Context, lines *directory.MemoryDirectory, trail *audit.Publisher, ids []domain.LineID) {
	for i, id := range ids {
		name := "Line " + id.String()
		if i == 0 {
			name = "Primary"
		}
		if err := lines.Activate(ctx, directory.Line{ID: id, Active: true, DisplayName: name}); err != nil {
			continue
		}
		_ = trail.Emit(ctx, audit.Event{Action: audit.ActionLineActivated, LineID: id, Actor: "system"})
	}
}

func seedCarrierConfigs(ctx context.Context, store *carrierconfig.MemoryStore, ids []domain.LineID) {
	for _, id := range ids {
		_ = store.Put(ctx, id, carrierconfig.Config{
			carrierconfig.KeyCrossNetworkAvailable: true,
		})
	}
}
