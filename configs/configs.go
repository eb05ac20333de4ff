package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	AccessTokenSecret         string
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	PostgresDatabaseUrl       string
	RabbitmqUrl               string
	MainServerAddress         string
	ServerAddress             string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	FanoutTimeoutSec          int
	DirectoryTimeoutSec       int
	RateLimitPerSec           int
	RateLimitBurst            int
	Domain                    string
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.PostgresDatabaseUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.RabbitmqUrl = os.Getenv("RABBITMQ_URL")
	configs.MainServerAddress = os.Getenv("MAIN_SERVER_ADDRESS")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.FanoutTimeoutSec, _ = strconv.Atoi(os.Getenv("FANOUT_TIMEOUT_SEC"))
	if configs.FanoutTimeoutSec == 0 {
		configs.FanoutTimeoutSec = 5
	}
	configs.DirectoryTimeoutSec, _ = strconv.Atoi(os.Getenv("DIRECTORY_TIMEOUT_SEC"))
	if configs.DirectoryTimeoutSec == 0 {
		configs.DirectoryTimeoutSec = 3
	}
	configs.RateLimitPerSec, _ = strconv.Atoi(os.Getenv("RATE_LIMIT_PER_SEC"))
	if configs.RateLimitPerSec == 0 {
		configs.RateLimitPerSec = 20
	}
	configs.RateLimitBurst, _ = strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if configs.RateLimitBurst == 0 {
		configs.RateLimitBurst = 40
	}
	configs.ServerAddress = os.Getenv("SERVER_ADDRESS")
	configs.Domain = os.Getenv("DOMAIN")
}
