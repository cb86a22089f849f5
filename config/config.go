package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds runtime settings read from the environment
type Config struct {
	Port                       string
	LogLevel                   string
	DemoMode                   bool
	RPCURL                     string
	CompetitionContractAddress string
	FeedContractAddress        string
	CompetitionScanCount       int
	RedisAddr                  string
	RedisPassword              string
	RedisDB                    int
	ActionLockTTL              time.Duration
}

// LoadEnv loads a .env file if one is present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}
}

// GetEnv returns the value of key or fallback when unset
func GetEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

// GetEnvInt parses key as an int, falling back on missing or malformed values
func GetEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvBool parses key as a bool, falling back on missing or malformed values
func GetEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

// GetEnvDuration parses key as a time.Duration, falling back on missing or malformed values
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

// Load reads the configuration from the environment
func Load() Config {
	return Config{
		Port:                       GetEnv("PORT", "8080"),
		LogLevel:                   GetEnv("LOG_LEVEL", "info"),
		DemoMode:                   GetEnvBool("DEMO_MODE", false),
		RPCURL:                     GetEnv("RPC_URL", "https://rpc.testnet.lens.xyz"),
		CompetitionContractAddress: GetEnv("COMPETITION_CONTRACT_ADDRESS", "0x0000000000000000000000000000000000000000"),
		FeedContractAddress:        GetEnv("FEED_CONTRACT_ADDRESS", "0x0000000000000000000000000000000000000000"),
		CompetitionScanCount:       GetEnvInt("COMPETITION_SCAN_COUNT", 5),
		RedisAddr:                  GetEnv("REDIS_ADDR", ""),
		RedisPassword:              GetEnv("REDIS_PASSWORD", ""),
		RedisDB:                    GetEnvInt("REDIS_DB", 0),
		ActionLockTTL:              GetEnvDuration("ACTION_LOCK_TTL", 2*time.Minute),
	}
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}
