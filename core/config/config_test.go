package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heavyk/kiss/core/config"
)

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Addr    string `env:"TEST_CONFIG_ADDR" envDefault:":8080"`
		Debug   bool   `env:"TEST_CONFIG_DEBUG" envDefault:"false"`
		Retries int    `env:"TEST_CONFIG_RETRIES" envDefault:"3"`
	}

	t.Setenv("TEST_CONFIG_ADDR", ":9999")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9999", cfg.Addr)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 3, cfg.Retries)

	// Same type is cached: a later env change is not observed.
	t.Setenv("TEST_CONFIG_ADDR", ":1111")
	var again serverConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, cfg, again)
}

func TestLoadRequired(t *testing.T) {
	type strictConfig struct {
		Token string `env:"TEST_CONFIG_TOKEN,required"`
	}

	var cfg strictConfig
	err := config.Load(&cfg)
	require.Error(t, err)
}

func TestMustLoadPanics(t *testing.T) {
	type brokenConfig struct {
		Secret string `env:"TEST_CONFIG_SECRET,required"`
	}

	assert.Panics(t, func() {
		var cfg brokenConfig
		config.MustLoad(&cfg)
	})
}
