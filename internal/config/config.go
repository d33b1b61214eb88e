package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Demo               Demo               `mapstructure:",squash"`
	Recommendation     Recommendation     `mapstructure:",squash"`
	ComplianceSync     ComplianceSync     `mapstructure:",squash"`
	RecommendationSync RecommendationSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Demo controla o modo demo: os stores em memória são populados com os
// arrays de seed em vez de começarem vazios
type Demo struct {
	Enabled bool `mapstructure:"demo_enabled"`
}

// Recommendation configura o serviço externo de recomendações de eventos
type Recommendation struct {
	URL         string `mapstructure:"recommendation_url"`
	AccessToken string `mapstructure:"recommendation_access_token"`
}

// ComplianceSync configura o agendador de snapshots de compliance
type ComplianceSync struct {
	CronSchedule string `mapstructure:"compliance_sync_cron"`
	Enabled      bool   `mapstructure:"compliance_sync_enabled"`
}

// RecommendationSync configura o agendador de atualização de recomendações
type RecommendationSync struct {
	CronSchedule string `mapstructure:"recommendation_sync_cron"`
	Enabled      bool   `mapstructure:"recommendation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/festival")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("DEMO_ENABLED", true)

	viper.SetDefault("RECOMMENDATION_URL", "https://functions.festival-manager.app")
	viper.SetDefault("RECOMMENDATION_ACCESS_TOKEN", "your_access_token")

	// Snapshots de compliance todos os dias às 3h da manhã
	viper.SetDefault("COMPLIANCE_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("COMPLIANCE_SYNC_ENABLED", false)

	// Atualização de recomendações todos os dias às 4h da manhã
	viper.SetDefault("RECOMMENDATION_SYNC_CRON", "0 4 * * *")
	viper.SetDefault("RECOMMENDATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Carregar o arquivo .env antes do viper (ambiente local)
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
