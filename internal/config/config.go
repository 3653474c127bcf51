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
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Database struct {
		// URI is used verbatim when no cluster credentials are supplied.
		URI string `yaml:"uri"`
		// ClusterHost plus User/Password select an Atlas-style SRV URI,
		// mirroring the hosted deployment this service was built against.
		ClusterHost    string        `yaml:"cluster_host"`
		Name           string        `yaml:"name"`
		User           string        `yaml:"user"`
		Password       string        `yaml:"password"`
		AppName        string        `yaml:"app_name"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
	} `yaml:"database"`

	Uploads struct {
		Dir         string `yaml:"dir"`
		MaxBodySize int64  `yaml:"max_body_size"`
	} `yaml:"uploads"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 5000
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "jobPortal"
	config.Database.AppName = "job-portal"
	config.Database.ConnectTimeout = 10 * time.Second

	config.Uploads.Dir = "uploads"
	config.Uploads.MaxBodySize = 10 * 1024 * 1024

	config.Logging.Level = "info"
	config.Logging.Format = "json"

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

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Database.URI = uri
	}

	if user := os.Getenv("DB_USER"); user != "" {
		c.Database.User = user
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}

	if name := os.Getenv("DB_NAME"); name != "" {
		c.Database.Name = name
	}

	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		c.Uploads.Dir = dir
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
