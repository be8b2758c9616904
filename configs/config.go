package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	Path               string `default:"recipelab.db"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port     int    `default:"8080"`
	BasePath string `default:"/api/v1"`
}

type Integrations struct {
	Recipe []string `default:"schemaorg_web"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
}

// Auth protects write routes when SecretKey is set.
type Auth struct {
	SecretKey string
}

const envPrefix = "RECIPELAB" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		var missing []string

		if c.DB.Host == "" {
			missing = append(missing, "DB.Host")
		}

		if c.DB.Password == "" {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for the %s driver", ErrConfiguration, strings.Join(missing, ", "), DriverPostgres)
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("%w: DB.Path required for the %s driver", ErrConfiguration, DriverSQLite)
		}
	default:
		return fmt.Errorf("%w: unknown database driver %q", ErrConfiguration, c.DB.Driver)
	}

	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("%w: Server.BasePath must start with /", ErrConfiguration)
	}

	c.Server.BasePath = strings.TrimSuffix(c.Server.BasePath, "/")

	return nil
}
