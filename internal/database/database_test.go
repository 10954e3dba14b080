package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolConfig
		want PoolConfig
	}{
		{
			name: "zero config gets all defaults",
			in:   PoolConfig{},
			want: PoolConfig{
				MaxConns:        defaultMaxConns,
				MinConns:        defaultMinConns,
				MaxConnIdleTime: defaultMaxConnIdleTime,
				MaxConnLifetime: defaultMaxConnLifetime,
			},
		},
		{
			name: "explicit values are kept",
			in: PoolConfig{
				MaxConns:        25,
				MinConns:        5,
				MaxConnIdleTime: time.Minute,
				MaxConnLifetime: time.Hour,
			},
			want: PoolConfig{
				MaxConns:        25,
				MinConns:        5,
				MaxConnIdleTime: time.Minute,
				MaxConnLifetime: time.Hour,
			},
		},
		{
			name: "min conns clamped to max",
			in:   PoolConfig{MaxConns: 3, MinConns: 8},
			want: PoolConfig{
				MaxConns:        3,
				MinConns:        3,
				MaxConnIdleTime: defaultMaxConnIdleTime,
				MaxConnLifetime: defaultMaxConnLifetime,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not-a-dsn", PoolConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}
