package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORDER_SVC_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("ORDERS_TOPIC", "")

	settings := Load()

	assert.Equal(t, "8081", settings.OrderSvcPort)
	assert.Equal(t, 24*time.Hour, settings.JWTTTL)
	assert.Equal(t, "orders", settings.OrdersTopic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ORDER_SVC_PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("DRAFT_TTL", "3600")

	settings := Load()

	assert.Equal(t, "9000", settings.OrderSvcPort)
	assert.Equal(t, "s3cret", settings.JWTSecret)
	assert.Equal(t, 90*time.Minute, settings.JWTTTL)
	assert.Equal(t, time.Hour, settings.DraftTTL)
}

func TestGetDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TTL", "soon")
	assert.Equal(t, time.Minute, getDuration("SOME_TTL", time.Minute))
}

func TestNewKafkaWriter(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	writer := NewKafkaWriter("orders")

	assert.Equal(t, "orders", writer.Topic)
	assert.Equal(t, "kafka:9092", writer.Addr.String())
}
