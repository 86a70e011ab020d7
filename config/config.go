package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize  = "100KB"
	defaultHistoryLimit        = 100
	defaultMaxHistoryLimit     = 1000
	defaultInvitationTTL       = 7 * 24 * time.Hour
	defaultInvitationCodeLen   = 6
	defaultInvitationAttempts  = 10
	defaultInvitationFallback  = 4
	defaultPushTimeout         = 10 * time.Second
	defaultAPNsProductionURL   = "https://api.push.apple.com"
	defaultAPNsSandboxURL      = "https://api.sandbox.push.apple.com"
	defaultAPNsTokenTTL        = 50 * time.Minute
	defaultQRCodeSize          = 256
	defaultQRCodeLevel         = "M"
	defaultRedeemRatePerSecond = 5
	defaultRedeemBurst         = 10
	defaultRedeemExpiresIn     = 3 * time.Minute
	defaultMetricsPath         = "/metrics"
	defaultPublishTimeout      = 5 * time.Second

	// PushProviderAPNs delivers alerts through Apple Push Notification service.
	PushProviderAPNs = "apns"
	// PushProviderFirebase delivers alerts through Firebase Cloud Messaging.
	PushProviderFirebase = "firebase"

	// PubSubProviderLocal posts alert events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes alert events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Location   LocationConfig   `json:"location" yaml:"location"`
	Invitation InvitationConfig `json:"invitation" yaml:"invitation"`
	Push       PushConfig       `json:"push" yaml:"push"`

	// APNs credentials; dispatch is disabled when any of them is missing
	APNs APNsConfig `json:"apns" yaml:"apns"`

	// Firebase configuration, only used by the firebase push provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for invitation QR codes
	QRCode QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	Metrics   MetricsConfig   `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LocationConfig bounds location history reads
type LocationConfig struct {
	DefaultHistoryLimit int `json:"defaultHistoryLimit" yaml:"defaultHistoryLimit"`
	MaxHistoryLimit     int `json:"maxHistoryLimit" yaml:"maxHistoryLimit"`
}

// InvitationConfig controls invitation code issuance
type InvitationConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Number of digits of a regular code
	CodeLength int `json:"codeLength" yaml:"codeLength"`

	// Numeric draws tried before falling back to a hex code
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// Random bytes in the hex fallback code
	FallbackBytes int `json:"fallbackBytes" yaml:"fallbackBytes"`
}

// PushConfig selects the push provider
type PushConfig struct {
	// Provider type: "apns", "firebase", or empty to disable dispatch
	Provider string        `json:"provider" yaml:"provider"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// APNsConfig holds token-based APNs credentials
type APNsConfig struct {
	Topic  string `json:"topic" yaml:"topic"`
	TeamID string `json:"teamId" yaml:"teamId"`
	KeyID  string `json:"keyId" yaml:"keyId"`

	// PEM encoded .p8 signing key; literal \n sequences are accepted
	AuthKey string `json:"authKey" yaml:"authKey"`

	ProductionURL string        `json:"productionUrl" yaml:"productionUrl"`
	SandboxURL    string        `json:"sandboxUrl" yaml:"sandboxUrl"`
	TokenTTL      time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// Configured reports whether every credential needed to sign requests is present.
func (c APNsConfig) Configured() bool {
	return c.Topic != "" && c.TeamID != "" && c.KeyID != "" && c.AuthKey != ""
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for alert event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Upper bound on a single publish, detached from the request deadline
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// RateLimitConfig limits invitation redemption attempts per client IP
type RateLimitConfig struct {
	Redeem struct {
		RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
		Burst         int           `json:"burst" yaml:"burst"`
		ExpiresIn     time.Duration `json:"expiresIn" yaml:"expiresIn"`
	} `json:"redeem" yaml:"redeem"`
}

// MetricsConfig exposes Prometheus metrics
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

func New() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		cfg.Postgres = &postgres.DBConn{}
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	applyAPNsEnvAliases(&cfg.APNs)
	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Location.DefaultHistoryLimit <= 0 {
		cfg.Location.DefaultHistoryLimit = defaultHistoryLimit
	}
	if cfg.Location.MaxHistoryLimit < cfg.Location.DefaultHistoryLimit {
		cfg.Location.MaxHistoryLimit = max(defaultMaxHistoryLimit, cfg.Location.DefaultHistoryLimit)
	}

	if cfg.Invitation.TTL <= 0 {
		cfg.Invitation.TTL = defaultInvitationTTL
	}
	if cfg.Invitation.CodeLength <= 0 {
		cfg.Invitation.CodeLength = defaultInvitationCodeLen
	}
	if cfg.Invitation.MaxAttempts <= 0 {
		cfg.Invitation.MaxAttempts = defaultInvitationAttempts
	}
	if cfg.Invitation.FallbackBytes <= 0 {
		cfg.Invitation.FallbackBytes = defaultInvitationFallback
	}

	if cfg.Push.Timeout <= 0 {
		cfg.Push.Timeout = defaultPushTimeout
	}

	cfg.APNs.AuthKey = strings.ReplaceAll(cfg.APNs.AuthKey, `\n`, "\n")
	if cfg.APNs.ProductionURL == "" {
		cfg.APNs.ProductionURL = defaultAPNsProductionURL
	}
	if cfg.APNs.SandboxURL == "" {
		cfg.APNs.SandboxURL = defaultAPNsSandboxURL
	}
	if cfg.APNs.TokenTTL <= 0 {
		cfg.APNs.TokenTTL = defaultAPNsTokenTTL
	}

	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.RateLimit.Redeem.RatePerSecond <= 0 {
		cfg.RateLimit.Redeem.RatePerSecond = defaultRedeemRatePerSecond
	}
	if cfg.RateLimit.Redeem.Burst <= 0 {
		cfg.RateLimit.Redeem.Burst = defaultRedeemBurst
	}
	if cfg.RateLimit.Redeem.ExpiresIn <= 0 {
		cfg.RateLimit.Redeem.ExpiresIn = defaultRedeemExpiresIn
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.PubSub != nil && cfg.PubSub.PublishTimeout <= 0 {
		cfg.PubSub.PublishTimeout = defaultPublishTimeout
	}
}

// applyAPNsEnvAliases honours the flat APNS_* variable names deployments already use.
// APNS_TEAM_ID would otherwise canonicalize to apns.team.id.
func applyAPNsEnvAliases(apns *APNsConfig) {
	aliases := []struct {
		env    string
		target *string
	}{
		{env: "APNS_TOPIC", target: &apns.Topic},
		{env: "APNS_TEAM_ID", target: &apns.TeamID},
		{env: "APNS_KEY_ID", target: &apns.KeyID},
		{env: "APNS_AUTH_KEY", target: &apns.AuthKey},
	}

	for _, alias := range aliases {
		if v := os.Getenv(alias.env); v != "" {
			*alias.target = v
		}
	}
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
