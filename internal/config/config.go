package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress              string `env:"RUN_ADDRESS"`
	DatabaseDSN             string `env:"DATABASE_URI"`
	MigrationsDir           string `env:"MIGRATIONS_DIR"`
	JWTSecret               string `env:"JWT_SECRET"`
	CustomerServiceAddress  string `env:"CUSTOMER_SERVICE_ADDRESS"`
	InventoryServiceAddress string `env:"INVENTORY_SERVICE_ADDRESS"`
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, ошибки загрузки игнорируем.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret shared by all services")
	flag.StringVar(&flagConfig.CustomerServiceAddress, "c", "http://localhost:3000", "Customer service base URL")
	flag.StringVar(&flagConfig.InventoryServiceAddress, "i", "http://localhost:3001", "Inventory service base URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:              defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:             defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:           defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:               defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		CustomerServiceAddress:  defaultIfBlank(envConfig.CustomerServiceAddress, flagsConfig.CustomerServiceAddress),
		InventoryServiceAddress: defaultIfBlank(envConfig.InventoryServiceAddress, flagsConfig.InventoryServiceAddress),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
