package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Insecure development fallbacks. Validate rejects them in production mode.
const (
	insecureAccessSecret  = "dev-access-secret-change-in-production"
	insecureRefreshSecret = "dev-refresh-secret-change-in-production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port           int      `json:"port" yaml:"port"`
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		RateLimit      struct {
			Enabled bool    `json:"enabled" yaml:"enabled"`
			Rate    float64 `json:"rate" yaml:"rate"` // requests per second per IP
			Burst   int     `json:"burst" yaml:"burst"`
		} `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	// Storage points at the directory holding the flat JSON collections.
	Storage struct {
		Path string `json:"path" yaml:"path"`
	} `json:"storage" yaml:"storage"`

	Uploads struct {
		Dir       string `json:"dir" yaml:"dir"`
		PublicURL string `json:"publicUrl" yaml:"publicUrl"`
		MaxBytes  int64  `json:"maxBytes" yaml:"maxBytes"`
	} `json:"uploads" yaml:"uploads"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Token struct {
		AccessTTL  time.Duration `json:"accessTtl" yaml:"accessTtl"`
		RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	} `json:"token" yaml:"token"`

	Auth struct {
		BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	} `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf with env-var overrides.
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
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

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a path and align each segment with the
			// existing YAML keys. Example: SECRETKEY_ACCESS -> secretKey.access
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 3001
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data/db"
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "data/uploads/avatars"
	}
	if cfg.Uploads.PublicURL == "" {
		cfg.Uploads.PublicURL = "http://localhost:3001"
	}
	if cfg.Uploads.MaxBytes == 0 {
		cfg.Uploads.MaxBytes = 5 << 20 // 5MB
	}
	if cfg.SecretKey.Access == "" {
		cfg.SecretKey.Access = insecureAccessSecret
	}
	if cfg.SecretKey.Refresh == "" {
		cfg.SecretKey.Refresh = insecureRefreshSecret
	}
	if cfg.Token.AccessTTL == 0 {
		cfg.Token.AccessTTL = 15 * time.Minute
	}
	if cfg.Token.RefreshTTL == 0 {
		cfg.Token.RefreshTTL = 30 * 24 * time.Hour
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
}

// Validate fails fast instead of running silently insecure: a production
// deployment must supply its own token secrets.
func (cfg *Config) Validate() error {
	if !cfg.IsProduction() {
		return nil
	}

	if cfg.SecretKey.Access == "" || cfg.SecretKey.Access == insecureAccessSecret {
		return errors.New("production requires an explicit access token secret (SECRETKEY_ACCESS)")
	}
	if cfg.SecretKey.Refresh == "" || cfg.SecretKey.Refresh == insecureRefreshSecret {
		return errors.New("production requires an explicit refresh token secret (SECRETKEY_REFRESH)")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return errors.New("access and refresh token secrets must differ")
	}

	return nil
}

// IsProduction reports whether the service runs in production mode.
func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.Env.Env, "production")
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
