package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Root struct {
	Env   string `yaml:"env"`
	Local Config `yaml:"local"`
	Dev   Config `yaml:"dev"`
	Prod  Config `yaml:"prod"`
}

type Config struct {
	Env string `yaml:"-"`

	Log struct {
		Level     string `yaml:"level"`
		Format    string `yaml:"format"`
		AddSource bool   `yaml:"add_source"`
	} `yaml:"log"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Catalog struct {
		FeedURL             string `yaml:"feed_url"`
		CacheTTLSeconds     int    `yaml:"cache_ttl_seconds"`
		PlaceholderPhotoURL string `yaml:"placeholder_photo_url"`
		BotUsername         string `yaml:"bot_username"`
	} `yaml:"catalog"`

	Cache struct {
		Driver string `yaml:"driver"` // memory|sqlite
		Path   string `yaml:"path"`
	} `yaml:"cache"`

	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
		Retries        int `yaml:"retries"`
		RatePerMinute  int `yaml:"rate_per_minute"`
	} `yaml:"http"`

	CLI struct {
		OutputFile string `yaml:"output_file"`
	} `yaml:"cli"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root Root
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, err
	}

	env := strings.TrimSpace(strings.ToLower(root.Env))
	if env == "" {
		env = "local"
	}

	var p Config
	switch env {
	case "local":
		p = root.Local
	case "dev":
		p = root.Dev
	case "prod":
		p = root.Prod
	default:
		return nil, fmt.Errorf("unknown env=%q (expected local|dev|prod)", env)
	}
	p.Env = env

	applyDefaults(&p)
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func applyDefaults(p *Config) {
	if p.Server.Host == "" {
		p.Server.Host = "0.0.0.0"
	}
	if p.Server.Port == 0 {
		p.Server.Port = 7892
	}

	// feed_url без дефолта: пустое значение — легитимное состояние
	// "каталог не настроен", а не ошибка загрузки конфига
	if p.Catalog.CacheTTLSeconds <= 0 {
		p.Catalog.CacheTTLSeconds = 300
	}
	if p.Catalog.PlaceholderPhotoURL == "" {
		p.Catalog.PlaceholderPhotoURL = "/assets/img/placeholder.svg"
	}

	p.Cache.Driver = strings.ToLower(strings.TrimSpace(p.Cache.Driver))
	if p.Cache.Driver == "" {
		p.Cache.Driver = "memory"
	}

	if p.HTTP.TimeoutSeconds <= 0 {
		p.HTTP.TimeoutSeconds = 15
	}
	if p.HTTP.Retries < 0 {
		p.HTTP.Retries = 0
	}
	if p.HTTP.RatePerMinute <= 0 {
		p.HTTP.RatePerMinute = 50
	}

	if p.CLI.OutputFile == "" {
		p.CLI.OutputFile = "catalog.json"
	}

	if p.Log.Level == "" {
		if p.Env == "prod" {
			p.Log.Level = "info"
		} else {
			p.Log.Level = "debug"
		}
	}
	if p.Log.Format == "" {
		if p.Env == "prod" {
			p.Log.Format = "json"
		} else {
			p.Log.Format = "text"
		}
	}
}

func validate(p *Config) error {
	switch p.Cache.Driver {
	case "memory":
	case "sqlite":
		if strings.TrimSpace(p.Cache.Path) == "" {
			return fmt.Errorf("cache.driver=sqlite requires cache.path")
		}
	default:
		return fmt.Errorf("unknown cache.driver=%q (expected memory|sqlite)", p.Cache.Driver)
	}
	return nil
}
