package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfigDefaults(t *testing.T) {
	configs := InitConfig("")

	assert.Equal(t, "local", configs.App.Environment)
	assert.Equal(t, 9990, configs.Server.Port)
	assert.Equal(t, 5432, configs.Database.Port)
	assert.Equal(t, "disable", configs.Database.SSLMode)
	assert.Equal(t, 6379, configs.Redis.Port)
	assert.Equal(t, 60, configs.JWT.Expiration)
	assert.Equal(t, 10, configs.Settlement.TimeoutSeconds)
	assert.Equal(t, "IDR", configs.Pricing.Currency)
	assert.InDelta(t, 0.8, configs.Pricing.TeacherShare, 0.0001)
	assert.Equal(t, "info", configs.Logger.Level)
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("PRICING_TEACHER_SHARE", "0.75")
	t.Setenv("JWT_SECRET", "test-secret")

	configs := InitConfig("")

	assert.Equal(t, 8081, configs.Server.Port)
	assert.InDelta(t, 0.75, configs.Pricing.TeacherShare, 0.0001)
	assert.Equal(t, "test-secret", configs.JWT.Secret)
}
