package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath                 = "."
	defaultMaxRequestBodySize   = "100KB"
	defaultMaxLinkedCommunities = 5
	defaultDraftTTL             = 30 * time.Minute
	defaultMaxDrafts            = 1024
	defaultMetricsPath          = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`

		// InstanceID tells console instances apart in directory events. Generated when empty.
		InstanceID string `json:"instanceId" yaml:"instanceId"`
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

	// Directory points at the remote directory service that owns every record
	Directory DirectoryConfig `json:"directory" yaml:"directory"`

	// Forms configuration for open form drafts and the linked community picker
	Forms *FormsConfig `json:"forms" yaml:"forms"`

	// PubSub configuration for directory change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for community location codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the Pub/Sub push endpoint that keeps instances in sync
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DirectoryConfig defines how the remote directory service is reached
type DirectoryConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Timeout for a single upstream call. Zero leaves the HTTP client default in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	UserAgent string `json:"userAgent" yaml:"userAgent"`
}

// FormsConfig defines limits for form drafts
type FormsConfig struct {
	MaxLinkedCommunities int           `json:"maxLinkedCommunities" yaml:"maxLinkedCommunities"`
	DraftTTL             time.Duration `json:"draftTtl" yaml:"draftTtl"`
	MaxDrafts            int           `json:"maxDrafts" yaml:"maxDrafts"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// WorkerConfig defines the directory event push endpoint
type WorkerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Port    int  `json:"port" yaml:"port"`

	// VerifyPushAuth checks the Google-signed OIDC token on every push request
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`

	// Audience expected in the push token. Empty derives it from the request URL.
	Audience string `json:"audience" yaml:"audience"`
}

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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
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

	// Environment variables override file values.
	// Example: DIRECTORY_BASEURL -> directory.baseUrl (not directory.baseurl)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	c.Directory.BaseURL = strings.TrimRight(strings.TrimSpace(c.Directory.BaseURL), "/")
	if c.Directory.BaseURL == "" {
		return errors.New("directory.baseUrl is required")
	}

	if c.Forms == nil {
		c.Forms = &FormsConfig{}
	}
	if c.Forms.MaxLinkedCommunities <= 0 {
		c.Forms.MaxLinkedCommunities = defaultMaxLinkedCommunities
	}
	if c.Forms.DraftTTL <= 0 {
		c.Forms.DraftTTL = defaultDraftTTL
	}
	if c.Forms.MaxDrafts <= 0 {
		c.Forms.MaxDrafts = defaultMaxDrafts
	}

	if strings.TrimSpace(c.Env.InstanceID) == "" {
		c.Env.InstanceID = uuid.NewString()
	}

	if c.Worker != nil && c.Worker.Enabled && c.Worker.Port == c.HTTP.Port {
		return errors.New("worker.port must differ from http.port")
	}

	if c.Metrics != nil && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}

	return nil
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
