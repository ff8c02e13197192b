package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"jwt"`

	// AdminEmails is the fixed allow-list of admin accounts. Normalized to
	// lowercase at load time and injected into the admin middleware.
	AdminEmails []string `yaml:"admin_emails"`
}

var AppConfig *Config

// LoadConfig reads configuration either from environment variables
// (when DATABASE_URL is set, the mode tests use) or from the YAML file at
// CONFIG_PATH (default config/config.yaml). A .env file is applied first
// when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if ttl := os.Getenv("JWT_TTL_DAYS"); ttl != "" {
			cfg.JWT.TTLDays, _ = strconv.Atoi(ttl)
		}
		if admins := os.Getenv("ADMIN_EMAILS"); admins != "" {
			cfg.AdminEmails = strings.Split(admins, ",")
		}
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 30
	}
	for i, email := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.ToLower(strings.TrimSpace(email))
	}
}

// AdminEmailSet returns the allow-list as a lookup set.
func (c *Config) AdminEmailSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.AdminEmails))
	for _, email := range c.AdminEmails {
		if email != "" {
			set[email] = struct{}{}
		}
	}
	return set
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
