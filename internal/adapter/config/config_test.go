package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_FlagsAndEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9000")
	t.Setenv("PRODUCTS_RETRY_ATTEMPTS", "5")
	t.Setenv("ORDER_DETAILS_BREAKER_TIMEOUT", "30s")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf := NewConfig(fs, "localhost:8082")
	require.NoError(t, fs.Parse([]string{"-d", "postgres://db", "--cache", "redis", "-p", "catalog:80"}))
	require.NoError(t, conf.Load())

	assert.Equal(t, "postgres://db", conf.Database.DSN)
	assert.Equal(t, "0.0.0.0:9000", conf.HTTP.HostString)
	assert.Equal(t, CacheDriverRedis, conf.Cache.Driver)
	assert.Equal(t, "catalog:80", conf.Remotes.Products.HostString)
	assert.Equal(t, uint(5), conf.Remotes.Products.RetryAttempts)
	assert.Equal(t, uint(3), conf.Remotes.Orders.RetryAttempts)
	assert.Equal(t, 30*time.Second, conf.Remotes.OrderDetails.BreakerTimeout)
	assert.Equal(t, 10*time.Second, conf.Remotes.Orders.BreakerTimeout)
	assert.Equal(t, 0.5, conf.Remotes.Products.BreakerFailureRatio)
}

func TestConfig_UnknownCacheDriver(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf := NewConfig(fs, "localhost:8082")
	require.NoError(t, fs.Parse([]string{"--cache", "memcached"}))

	assert.Error(t, conf.Load())
}
