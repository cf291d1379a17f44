package pagination

import (
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v2"
)

// Config is the stored pagination configuration.
//
//	active: true
//	suffix: /page-%number%.html
//	legacy_base: page
//	prev_next: true
type Config struct {
	// Active enables the custom scheme. It has no effect without a valid Suffix.
	Active bool `yaml:"active" json:"active"`
	// Suffix is the template, e.g. "/page-%number%.html".
	Suffix string `yaml:"suffix" json:"suffix"`
	// LegacyBase is the host's pagination segment, "page" by default.
	LegacyBase string `yaml:"legacy_base" json:"legacy_base"`
	// PrevNext enables rel prev/next head links.
	PrevNext bool `yaml:"prev_next" json:"prev_next"`
	// CacheSize bounds the compiled pattern cache.
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		LegacyBase: DefaultLegacyBase,
		CacheSize:  DefaultCacheSize,
	}
}

// Template returns the parsed suffix when the configuration is active.
func (c Config) Template() (Template, bool) {
	if !c.Active {
		return Template{}, false
	}
	return ParseSuffix(c.Suffix)
}

// Validate reports a suffix that cannot be used.
func (c Config) Validate() error {
	_, err := NormalizeSuffix(c.Suffix)
	return err
}

// ParseConfig decodes YAML and fills unset fields from DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, newConfigError(err, "yaml")
	}
	return withDefaults(cfg)
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, newConfigError(err, path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, newConfigError(err, path)
	}
	return cfg, nil
}

func withDefaults(cfg Config) (Config, error) {
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return Config{}, newConfigError(err, "defaults")
	}
	return cfg, nil
}
