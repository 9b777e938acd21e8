package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auction AuctionConfig `mapstructure:"auction"`
	Store   StoreConfig   `mapstructure:"store"`
	Chat    ChatConfig    `mapstructure:"chat"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AuctionConfig struct {
	RoundInterval      time.Duration `mapstructure:"round_interval"`
	MaxRounds          int           `mapstructure:"max_rounds"`
	DefaultVendorCount int           `mapstructure:"default_vendor_count"`
}

type StoreConfig struct {
	// Capacity bounds the number of retained auctions; oldest ended
	// auctions are evicted first once the limit is reached.
	Capacity int           `mapstructure:"capacity"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type ChatConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from config.yaml (if present) and PROCURV_* env vars
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("auction.round_interval", 2*time.Second)
	v.SetDefault("auction.max_rounds", 10)
	v.SetDefault("auction.default_vendor_count", 4)
	v.SetDefault("store.capacity", 1000)
	v.SetDefault("store.ttl", time.Hour)
	v.SetDefault("chat.endpoint", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("chat.model", "llama-3.1-8b-instant")
	v.SetDefault("chat.api_key", "")
	v.SetDefault("chat.timeout", 8*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PROCURV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// config file is optional; defaults plus env are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Auction.MaxRounds <= 0 {
		return nil, fmt.Errorf("config: auction.max_rounds must be positive, got %d", cfg.Auction.MaxRounds)
	}
	if cfg.Auction.RoundInterval <= 0 {
		return nil, fmt.Errorf("config: auction.round_interval must be positive, got %s", cfg.Auction.RoundInterval)
	}
	if cfg.Store.Capacity <= 0 {
		return nil, fmt.Errorf("config: store.capacity must be positive, got %d", cfg.Store.Capacity)
	}

	return &cfg, nil
}
