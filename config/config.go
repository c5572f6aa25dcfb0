package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ✅ Placeholder shown when a catalog record has no usable images
var PlaceholderImage = "/images/placeholder.jpg"

type Config struct {
	Port string

	// Upstream catalog API base URL, resolved once at startup
	CatalogAPIBaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// ✅ Redis Config (booking draft store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (booking.submitted events)
	KafkaBroker string
	KafkaTopic  string

	// ✅ SMTP Config (booking confirmation mail)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Minutes an abandoned booking draft survives in Redis
	DraftTTLMinutes int
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	draftTTL, _ := strconv.Atoi(os.Getenv("DRAFT_TTL_MINUTES"))
	if draftTTL <= 0 {
		draftTTL = 120
	}

	baseURL := os.Getenv("CATALOG_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:1337"
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "booking.submitted"
	}

	return &Config{
		Port: os.Getenv("PORT"),

		CatalogAPIBaseURL: baseURL,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  topic,

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		DraftTTLMinutes: draftTTL,
	}
}
