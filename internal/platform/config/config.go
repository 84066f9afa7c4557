package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"crosscall/pkg/domain"
	pstrings "crosscall/pkg/platform/strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// AuthClientID and AuthClientSecretHash guard the token endpoint. The
	// hash is bcrypt; when unset, main generates a development secret and
	// logs it once at startup.
	AuthClientID         string
	AuthClientSecretHash string
	TokenTTL             time.Duration

	Redis RedisConfig
	Kafka KafkaConfig

	// PostgresURL enables the durable audit store when set.
	PostgresURL string

	// SupportedLines seeds the simulated capability service when no real
	// remote endpoint is wired in.
	SupportedLines []domain.LineID
	// CompanionSupportedLines seeds the companion-feature support predicate.
	CompanionSupportedLines []domain.LineID
	// ConnectLatency delays the simulated capability service connection
	// callback to mimic the asynchronous platform service.
	ConnectLatency time.Duration
}

// RedisConfig configures the optional Redis-backed carrier config store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional Kafka audit sink.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CROSSCALL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("KAFKA_AUDIT_TOPIC")
	if topic == "" {
		topic = "crosscall.audit"
	}

	return Server{
		Addr:                 addr,
		JWTSigningKey:        jwtSigningKey,
		JWTIssuer:            envDefault("JWT_ISSUER", "crosscall"),
		JWTAudience:          envDefault("JWT_AUDIENCE", "crosscall-api"),
		AuthClientID:         envDefault("AUTH_CLIENT_ID", "crosscall-admin"),
		AuthClientSecretHash: os.Getenv("AUTH_CLIENT_SECRET_HASH"),
		TokenTTL:             envDuration("TOKEN_TTL", time.Hour),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    envList("KAFKA_BROKERS"),
			AuditTopic: topic,
		},
		PostgresURL:             os.Getenv("POSTGRES_URL"),
		SupportedLines:          envLineIDsDefault("CAPABILITY_SUPPORTED_LINES", domain.LineID(1)),
		CompanionSupportedLines: envLineIDsDefault("COMPANION_SUPPORTED_LINES", domain.LineID(1)),
		ConnectLatency:          envDuration("CAPABILITY_CONNECT_LATENCY", 50*time.Millisecond),
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return pstrings.DedupeAndTrim(strings.Split(v, ","))
}

func envLineIDsDefault(key string, fallback ...domain.LineID) []domain.LineID {
	var ids []domain.LineID
	for _, s := range envList(key) {
		if id, err := domain.ParseLineID(s); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return fallback
	}
	return ids
}
