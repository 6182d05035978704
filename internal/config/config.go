package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MenuConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	MenuDB       `yaml:"menu_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Business     `yaml:"business"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MenuDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"menu-events"`
}

type Business struct {
	// SweepIntervalSeconds paces the background stale-sheet sweep.
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds" env-default:"60"`
}

func MustLoad() *MenuConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MENU_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MENU_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MenuConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
