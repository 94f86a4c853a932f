package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "http://localhost:3000", conf.Frontend.URL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:1337"}, conf.Cors.AllowedOrigins)
	assert.Empty(t, conf.Kafka.Brokers)
	assert.Empty(t, conf.Stripe.APIKey)
	assert.Equal(t, 5*time.Minute, conf.Cache.TTL)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("FRONTEND_URL", "https://shop.example.com/")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("STRIPE_TIMEOUT", "3s")
	t.Setenv("KAFKA_PUBLISH_TIMEOUT", "500ms")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "https://shop.example.com", conf.Frontend.URL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, conf.Stripe.Timeout)
	assert.Equal(t, 500*time.Millisecond, conf.Kafka.PublishTimeout)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "production requires webhook secret",
			env:  map[string]string{"ENV": "production"},

			wantErr: true,
		},
		{
			name: "production with webhook secret",
			env:  map[string]string{"ENV": "production", "STRIPE_WEBHOOK_SECRET": "whsec_test"},
		},
		{
			name:    "unknown env",
			env:     map[string]string{"ENV": "dev"},
			wantErr: true,
		},
		{
			name:    "invalid broker address",
			env:     map[string]string{"KAFKA_BROKERS": "not a broker"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
