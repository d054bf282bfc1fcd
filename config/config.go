package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultEnvPrefix          = "FREEDGE_"
	defaultMaxRequestBodySize = "2MB"
	defaultThresholdDays      = 90
	defaultSuspectAfterDays   = 365
	defaultResponseTimeout    = 30 * time.Second
	defaultPreviewTTL         = 30 * time.Minute
	defaultMaxUploadBytes     = 1 << 20
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env" validate:"required"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		WorkerPort         int    `json:"workerPort" yaml:"workerPort" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database controls schema migration and query logging
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// PubSub configuration for check-in dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Lifecycle configuration for overdue selection and caretaker check-ins
	Lifecycle *LifecycleConfig `json:"lifecycle" yaml:"lifecycle"`

	// Importer configuration for dataset previews
	Importer *ImporterConfig `json:"importer" yaml:"importer"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema migration behaviour
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at WARN
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=noop local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`

	// Expected audience of push OIDC tokens received by the worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LifecycleConfig defines overdue selection and check-in behaviour
type LifecycleConfig struct {
	// Entries whose last confirmation is older than this are overdue
	ThresholdDays int `json:"thresholdDays" yaml:"thresholdDays" validate:"gte=0"`

	// Active entries unconfirmed for longer than this become suspected inactive
	SuspectAfterDays int `json:"suspectAfterDays" yaml:"suspectAfterDays" validate:"gte=0"`

	// How long a transport waits for a caretaker reply
	ResponseTimeout time.Duration `json:"responseTimeout" yaml:"responseTimeout"`

	// Transport type: "log" or "simulated"
	Transport string `json:"transport" yaml:"transport" validate:"omitempty,oneof=log simulated"`

	// Reply used by the simulated transport
	SimulatedReply string `json:"simulatedReply" yaml:"simulatedReply" validate:"omitempty,oneof=confirmed_active confirmed_inactive no_response"`

	// How long the simulated caretaker takes to answer. Longer than ResponseTimeout means no response.
	SimulatedDelay time.Duration `json:"simulatedDelay" yaml:"simulatedDelay" validate:"gte=0"`
}

// ImporterConfig defines import preview behaviour
type ImporterConfig struct {
	PreviewTTL time.Duration `json:"previewTtl" yaml:"previewTtl"`

	// Largest dataset upload the API accepts
	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes" validate:"gte=0"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Only FREEDGE_ prefixed variables override the file.
	// Example: FREEDGE_LIFECYCLE_THRESHOLDDAYS -> lifecycle.thresholdDays
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: defaultEnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(strings.TrimPrefix(k, defaultEnvPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	paths := []string{"config", "../config", "../../config"}
	if path != "" {
		paths = append([]string{path}, paths...)
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (FREEDGE_POSTGRES_REPLICAS_0_HOST, ...)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Lifecycle == nil {
		cfg.Lifecycle = &LifecycleConfig{}
	}
	if cfg.Lifecycle.ThresholdDays == 0 {
		cfg.Lifecycle.ThresholdDays = defaultThresholdDays
	}
	if cfg.Lifecycle.SuspectAfterDays == 0 {
		cfg.Lifecycle.SuspectAfterDays = defaultSuspectAfterDays
	}
	if cfg.Lifecycle.ResponseTimeout == 0 {
		cfg.Lifecycle.ResponseTimeout = defaultResponseTimeout
	}
	if cfg.Importer == nil {
		cfg.Importer = &ImporterConfig{}
	}
	if cfg.Importer.PreviewTTL == 0 {
		cfg.Importer.PreviewTTL = defaultPreviewTTL
	}
	if cfg.Importer.MaxUploadBytes == 0 {
		cfg.Importer.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: FREEDGE_POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := defaultEnvPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

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
