package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type TopupConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	TopupDB      `yaml:"topup_db"`
	LogConfig    `yaml:"log_config"`
	Redis        `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	Provider     `yaml:"provider"`
	Payment      `yaml:"payment"`
	Push         `yaml:"push"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"3000"`
}

type TopupDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Provider struct {
	BaseURL       string        `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Username      string        `yaml:"username" env:"PROVIDER_USERNAME"`
	APIKey        string        `yaml:"api_key" env:"PROVIDER_API_KEY"`
	WebhookSecret string        `yaml:"webhook_secret" env:"PROVIDER_WEBHOOK_SECRET"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
}

type Payment struct {
	// ConfirmAfter simulates the payment gateway: the payment-confirmed
	// trigger fires this long after creation.
	ConfirmAfter time.Duration `yaml:"confirm_after" env-default:"5s"`
	// SettleAfter bounds how long a transaction may sit in
	// PENDING_PROVIDER before the fallback settles it.
	SettleAfter time.Duration `yaml:"settle_after" env-default:"60s"`
}

type Push struct {
	ProbeInterval time.Duration `yaml:"probe_interval" env-default:"30s"`
}

func MustLoad() *TopupConfig {

	// Processing env config variable and file
	configPath := os.Getenv("TOPUP_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TOPUP_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg TopupConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
