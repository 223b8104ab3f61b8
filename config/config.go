package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Settings struct {
	OrderSvcPort     string
	AnalyticsSvcPort string
	GatewayPort      string

	OrderSvcURL     string
	AnalyticsSvcURL string
	PublicBaseURL   string

	JWTSecret string
	JWTTTL    time.Duration
	DraftTTL  time.Duration

	OrdersTopic string
}

// Load reads .env when present and falls back to the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Settings{
		OrderSvcPort:     GetEnv("ORDER_SVC_PORT", "8081"),
		AnalyticsSvcPort: GetEnv("ANALYTICS_SVC_PORT", "8083"),
		GatewayPort:      GetEnv("GATEWAY_PORT", "8080"),
		OrderSvcURL:      GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL:  GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		PublicBaseURL:    GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		JWTSecret:        GetEnv("JWT_SECRET", "changeme"),
		JWTTTL:           getDuration("JWT_TTL", 24*time.Hour),
		DraftTTL:         getDuration("DRAFT_TTL", 24*time.Hour),
		OrdersTopic:      GetEnv("ORDERS_TOPIC", "orders"),
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	// plain numbers are read as seconds
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid duration for %s=%q, using %s", key, raw, fallback)
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	if dbHost == "" || dbPort == "" || dbName == "" || dbUser == "" {
		log.Fatal("Database environment variables are not fully configured")
	}

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
