package config

import (
	"log"

	"github.com/EAATA-Brasil/backendAppShop/pkg/constant"
	"github.com/spf13/viper"
)

const (
	DefaultPort            = "8080"
	DefaultAuditTopic      = "device_admission_events"
	DefaultAssetsDir       = "./public"
	DefaultConnectAttempts = 5
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	DBConnectAttempts   int
	AdminKeyHash        string
	KafkaBrokers        string
	AuditTopic          string
	AssetsDir           string
	DefaultMaxDevices   int
	DefaultBlockMessage string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DB_CONNECT_ATTEMPTS", DefaultConnectAttempts)
	v.SetDefault("AUDIT_TOPIC", DefaultAuditTopic)
	v.SetDefault("ASSETS_DIR", DefaultAssetsDir)
	v.SetDefault("MAX_DEVICES_DEFAULT", constant.DefaultMaxDevices)
	v.SetDefault("BLOCK_MESSAGE_DEFAULT", constant.DefaultBlockMessage)

	cfg := &Config{
		Env:                 v.GetString("ENV"),
		Port:                v.GetString("PORT"),
		DBURL:               v.GetString("DB_URL"),
		DBConnectAttempts:   v.GetInt("DB_CONNECT_ATTEMPTS"),
		AdminKeyHash:        v.GetString("ADMIN_KEY_HASH"),
		KafkaBrokers:        v.GetString("KAFKA_BROKERS"),
		AuditTopic:          v.GetString("AUDIT_TOPIC"),
		AssetsDir:           v.GetString("ASSETS_DIR"),
		DefaultMaxDevices:   v.GetInt("MAX_DEVICES_DEFAULT"),
		DefaultBlockMessage: v.GetString("BLOCK_MESSAGE_DEFAULT"),
	}

	if cfg.DBURL == "" {
		log.Fatalf("Missing required config: DB_URL")
	}
	if cfg.DefaultMaxDevices < 1 {
		log.Printf("Invalid MAX_DEVICES_DEFAULT, using default %d", constant.DefaultMaxDevices)
		cfg.DefaultMaxDevices = constant.DefaultMaxDevices
	}

	return cfg
}
