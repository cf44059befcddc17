package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Renal37/archmarket/internal/services"
	"github.com/shopspring/decimal"
)

type Config struct {
	endpoint       string
	dsn            string
	logLevel       string
	env            string
	authSecretKey  string
	adminLogins    []string
	taxRate        decimal.Decimal
	requestTimeout time.Duration
	rateLimitRPS   float64
	rateLimitBurst int
	redisAddress   string
	eventWorkers   int
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	var (
		endpoint string
		dsn      string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	env := envString("ENV", "production")

	authSecretKey := os.Getenv("AUTH_SECRET_KEY")
	if authSecretKey == "" {
		if env == "production" {
			authSecretKey = generateRandomString(32)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	return Config{
		endpoint:       endpoint,
		dsn:            dsn,
		logLevel:       envString("LOG_LEVEL", "error"),
		env:            env,
		authSecretKey:  authSecretKey,
		adminLogins:    envList("ADMIN_LOGINS"),
		taxRate:        envDecimal("TAX_RATE", services.DefaultTaxRate),
		requestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
		rateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		rateLimitBurst: envInt("RATE_LIMIT_BURST", 40),
		redisAddress:   os.Getenv("REDIS_ADDRESS"),
		eventWorkers:   envInt("EVENT_WORKERS", 2),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envList разбирает список через запятую, пустые элементы отбрасываются.
func envList(key string) []string {
	var result []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: %s=%q is not an integer, using %d\n", key, value, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("WARNING: %s=%q is not a number, using %v\n", key, value, fallback)
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("WARNING: %s=%q is not a duration, using %s\n", key, value, fallback)
		return fallback
	}
	return d
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		log.Printf("WARNING: %s=%q is not a valid rate, using %s\n", key, value, fallback)
		return fallback
	}
	return d
}
