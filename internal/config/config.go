package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

// CatalogConfig elige de dónde sale el catálogo de drogas.
//   - builtin: tabla embebida (default)
//   - file: formulario YAML en File; con Watch se recarga al cambiar
//   - postgres: tabla formulary_drugs en Database.DSN
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	File   string `mapstructure:"file"`
	Watch  bool   `mapstructure:"watch"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load lee defaults, archivo opcional y variables INFUSION_* (ej INFUSION_SERVER_PORT).
// PORT y DB_DSN se siguen aceptando para despliegues viejos.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "infusion-rate-calculator")
	v.SetDefault("catalog.source", CatalogBuiltin)
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("database.dsn", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// archivo inexistente: seguimos con defaults + env
		}
	}

	v.SetEnvPrefix("INFUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p := os.Getenv("PORT"); p != "" && os.Getenv("INFUSION_SERVER_PORT") == "" {
		v.Set("server.port", p)
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" && os.Getenv("INFUSION_DATABASE_DSN") == "" {
		v.Set("database.dsn", dsn)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))

	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogFile:
		if strings.TrimSpace(c.Catalog.File) == "" {
			return errors.New("config: catalog.file is required when catalog.source=file")
		}
	case CatalogPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return errors.New("config: database.dsn is required when catalog.source=postgres")
		}
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	return nil
}
