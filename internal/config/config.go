package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		RateLimit    float64       `yaml:"rate_limit" default:"20"` // requests per second per client
		RateBurst    int           `yaml:"rate_burst" default:"40"`
	} `yaml:"server"`

	Repository struct {
		// Driver selects the primary candidate store: "http" (remote
		// backend) or "postgres" (local database).
		Driver string `yaml:"driver" default:"http"`

		Backend struct {
			BaseURL    string        `yaml:"base_url" default:"http://localhost:8000"`
			Timeout    time.Duration `yaml:"timeout" default:"10s"`
			MaxRetries int           `yaml:"max_retries" default:"3"`
		} `yaml:"backend"`

		Postgres struct {
			DSN             string        `yaml:"dsn"`
			MaxOpenConns    int           `yaml:"max_open_conns" default:"10"`
			MaxIdleConns    int           `yaml:"max_idle_conns" default:"5"`
			ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" default:"30m"`
		} `yaml:"postgres"`
	} `yaml:"repository"`

	Query struct {
		// Locale drives the collation used for name/stage/role sorting
		Locale       string `yaml:"locale" default:"en"`
		MonthOptions int    `yaml:"month_options" default:"12"`
	} `yaml:"query"`

	Cache struct {
		Enabled bool          `yaml:"enabled" default:"false"`
		TTL     time.Duration `yaml:"ttl" default:"60s"`
	} `yaml:"cache"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.RateLimit = 20
	config.Server.RateBurst = 40

	config.Repository.Driver = "http"
	config.Repository.Backend.BaseURL = "http://localhost:8000"
	config.Repository.Backend.Timeout = 10 * time.Second
	config.Repository.Backend.MaxRetries = 3
	config.Repository.Postgres.MaxOpenConns = 10
	config.Repository.Postgres.MaxIdleConns = 5
	config.Repository.Postgres.ConnMaxLifetime = 30 * time.Minute

	config.Query.Locale = "en"
	config.Query.MonthOptions = 12

	config.Cache.Enabled = false
	config.Cache.TTL = 60 * time.Second

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if driver := os.Getenv("REPOSITORY_DRIVER"); driver != "" {
		c.Repository.Driver = driver
	}

	if baseURL := os.Getenv("BACKEND_BASE_URL"); baseURL != "" {
		c.Repository.Backend.BaseURL = baseURL
	}

	if timeout := os.Getenv("BACKEND_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Repository.Backend.Timeout = d
		}
	}

	if retries := os.Getenv("BACKEND_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil {
			c.Repository.Backend.MaxRetries = n
		}
	}

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		c.Repository.Postgres.DSN = dsn
	}

	if locale := os.Getenv("QUERY_LOCALE"); locale != "" {
		c.Query.Locale = locale
	}

	if months := os.Getenv("QUERY_MONTH_OPTIONS"); months != "" {
		if n, err := strconv.Atoi(months); err == nil {
			c.Query.MonthOptions = n
		}
	}

	if enabled := os.Getenv("CACHE_ENABLED"); enabled != "" {
		c.Cache.Enabled = enabled == "true" || enabled == "1"
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Cache.TTL = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
