package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Kafka    KafkaConfig
	Services ServicesConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Port string
	Env  string
	// AllowedOrigins is the CORS allow list. A single "*" allows any origin.
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// KafkaConfig configures the domain event publisher. Leaving Brokers empty
// disables publishing; the service keeps running without events.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ServicesConfig holds base URLs for the Auth and Patients services this
// service verifies identities and pet ownership against.
type ServicesConfig struct {
	AuthURL     string
	PatientsURL string
	Timeout     time.Duration
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running with environment variables only is fine in containers.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	timeout, err := time.ParseDuration(viper.GetString("SERVICES_TIMEOUT"))
	if err != nil {
		timeout = 5 * time.Second
	}

	maxFileSize := viper.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxFileSize == 0 {
		maxFileSize = 10 << 20
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/medical"
	}

	topic := viper.GetString("KAFKA_TOPIC")
	if topic == "" {
		topic = "vetclinic.events"
	}

	allowedOrigins := viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
			Topic:   topic,
		},
		Services: ServicesConfig{
			AuthURL:     viper.GetString("AUTH_SERVICE_URL"),
			PatientsURL: viper.GetString("PATIENTS_SERVICE_URL"),
			Timeout:     timeout,
		},
		Upload: UploadConfig{
			Dir:         uploadDir,
			MaxFileSize: maxFileSize,
		},
	}

	return config, nil
}
