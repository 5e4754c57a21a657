package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientOptions_DefaultPoolSize(t *testing.T) {
	opts := clientOptions(Options{Addr: "localhost:6379", DB: 1})

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)
	assert.Equal(t, defaultPoolSize, opts.PoolSize)
}

func TestClientOptions_CustomPoolSize(t *testing.T) {
	opts := clientOptions(Options{Addr: "cache:6379", Password: "secret", PoolSize: 32})

	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 32, opts.PoolSize)
}
