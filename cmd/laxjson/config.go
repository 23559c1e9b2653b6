package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/leofalp/laxjson"
	"github.com/leofalp/laxjson/dates"
)

// defaultConfigPath is used when neither --config nor LAXJSON_CONFIG is
// set. A missing default file is not an error.
const defaultConfigPath = ".laxjson.yaml"

// Config is the YAML configuration file layout. Every field has a flag
// counterpart; flags win over the file.
type Config struct {
	Convert struct {
		Numbers  bool `yaml:"numbers"`
		NaN      bool `yaml:"nan"`
		Booleans bool `yaml:"booleans"`
		Dates    bool `yaml:"dates"`
		HTML     bool `yaml:"html"`
	} `yaml:"convert"`
	Remove struct {
		Nulls        bool `yaml:"nulls"`
		Undefined    bool `yaml:"undefined"`
		EmptyObjects bool `yaml:"empty_objects"`
		EmptyArrays  bool `yaml:"empty_arrays"`
	} `yaml:"remove"`
	Strict        bool     `yaml:"strict"`
	DateFormats   []string `yaml:"date_formats"`
	DateCacheSize int      `yaml:"date_cache_size"`
}

// LoadConfig loads environment variables from envFile (or .env) and then
// the YAML config. Path resolution order: the explicit path argument, the
// LAXJSON_CONFIG variable, the default file. Only an explicitly requested
// file is required to exist.
func LoadConfig(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Optional implicit .env, same as the library's sibling tools.
		_ = godotenv.Load()
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv("LAXJSON_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = defaultConfigPath
	}

	config := &Config{}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Options translates the file configuration into library options. Format
// strings are passed through as-is; laxjson validates them on first use,
// so a typo in the file surfaces as ErrInvalidOptions.
func (c *Config) Options() *laxjson.Options {
	opts := &laxjson.Options{
		ConvertNumbers:     c.Convert.Numbers,
		ConvertNaN:         c.Convert.NaN,
		ConvertBooleans:    c.Convert.Booleans,
		ConvertDates:       c.Convert.Dates,
		ConvertHTML:        c.Convert.HTML,
		RemoveNulls:        c.Remove.Nulls,
		RemoveUndefined:    c.Remove.Undefined,
		RemoveEmptyObjects: c.Remove.EmptyObjects,
		RemoveEmptyArrays:  c.Remove.EmptyArrays,
		StrictMode:         c.Strict,
		DateCacheSize:      c.DateCacheSize,
	}
	for _, format := range c.DateFormats {
		opts.DateFormats = append(opts.DateFormats, dates.Format(format))
	}
	return opts
}
