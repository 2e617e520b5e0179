package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/nodeid"
)

func TestConfig_UnmarshalYAML_DurationStrings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name: "duration strings",
			input: `
enabled: true
strategy: ttl
ttl: 1h
cleanup_interval: 5m
`,
			want: Config{
				Enabled:         true,
				Strategy:        StrategyTTL,
				TTL:             time.Hour,
				CleanupInterval: 5 * time.Minute,
			},
		},
		{
			name: "compound duration",
			input: `
enabled: true
strategy: lru
max_size: 500
ttl: 2h30m
`,
			want: Config{
				Enabled:  true,
				Strategy: StrategyLRU,
				MaxSize:  500,
				TTL:      2*time.Hour + 30*time.Minute,
			},
		},
		{
			name: "invalid duration string",
			input: `
enabled: true
ttl: invalid
`,
			wantErr: true,
		},
		{
			name:  "minimal config",
			input: "enabled: false\n",
			want:  Config{Enabled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Config
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"disabled skips checks", Config{Enabled: false, Strategy: "bogus"}, false},
		{"simple", Config{Enabled: true, Strategy: StrategySimple}, false},
		{"lru", Config{Enabled: true, Strategy: StrategyLRU, MaxSize: 100}, false},
		{"lru zero size", Config{Enabled: true, Strategy: StrategyLRU}, true},
		{"ttl", Config{Enabled: true, Strategy: StrategyTTL, TTL: time.Minute, CleanupInterval: time.Second}, false},
		{"ttl zero ttl", Config{Enabled: true, Strategy: StrategyTTL, CleanupInterval: time.Second}, true},
		{"ttl zero cleanup", Config{Enabled: true, Strategy: StrategyTTL, TTL: time.Minute}, true},
		{"unknown strategy", Config{Enabled: true, Strategy: "hybrid"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Run("ValidConfigs", func(t *testing.T) {
		configs := map[string]Config{
			"simple": {Enabled: true, Strategy: StrategySimple},
			"lru":    {Enabled: true, Strategy: StrategyLRU, MaxSize: 100},
			"ttl":    {Enabled: true, Strategy: StrategyTTL, TTL: 5 * time.Minute, CleanupInterval: time.Minute},
		}

		for name, config := range configs {
			t.Run(name, func(t *testing.T) {
				cache, err := NewFromConfig[string](context.Background(), config)
				require.NoError(t, err)
				defer cache.Close()

				_, err = cache.Set(nodeid.ObjectsFolderID(), "Objects")
				require.NoError(t, err)
				value, exists := cache.Get(nodeid.ObjectsFolderID())
				assert.True(t, exists)
				assert.Equal(t, "Objects", value)
			})
		}
	})

	t.Run("DisabledCache", func(t *testing.T) {
		cache, err := NewFromConfig[string](context.Background(), Config{Enabled: false})
		require.NoError(t, err)
		defer cache.Close()

		_, _ = cache.Set(nodeid.ObjectsFolderID(), "Objects")
		_, exists := cache.Get(nodeid.ObjectsFolderID())
		assert.False(t, exists, "disabled cache should always miss")
		assert.Nil(t, cache.Stats())
		assert.Empty(t, cache.Keys())
	})

	t.Run("InvalidConfigs", func(t *testing.T) {
		invalid := []Config{
			{Enabled: true, Strategy: StrategyLRU, MaxSize: 0},
			{Enabled: true, Strategy: StrategyTTL, TTL: 0, CleanupInterval: time.Minute},
			{Enabled: true, Strategy: Strategy("invalid")},
		}

		for _, config := range invalid {
			_, err := NewFromConfig[string](context.Background(), config)
			assert.Error(t, err, "expected error for %+v", config)
		}
	})
}
