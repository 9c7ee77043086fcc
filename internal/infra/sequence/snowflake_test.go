package sequence

import (
	"sync"
	"testing"

	"storefront/config"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberGenerator(t *testing.T) {
	testcases := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "default node", cfg: &config.Config{}},
		{name: "configured node", cfg: &config.Config{OrderNumber: &config.OrderNumberConfig{Node: 7}}},
		{name: "highest node", cfg: &config.Config{OrderNumber: &config.OrderNumberConfig{Node: 1023}}},
		{name: "node too large", cfg: &config.Config{OrderNumber: &config.OrderNumberConfig{Node: 1024}}, wantErr: true},
		{name: "negative node", cfg: &config.Config{OrderNumber: &config.OrderNumberConfig{Node: -1}}, wantErr: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := NewOrderNumberGenerator(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Positive(t, gen.Next())
		})
	}
}

func TestSnowflakeGenerator_UniqueAndIncreasing(t *testing.T) {
	gen, err := newSnowflakeGenerator(3)
	require.NoError(t, err)

	prev := gen.Next()
	assert.Equal(t, int64(3), snowflake.ID(prev).Node())
	for range 10000 {
		next := gen.Next()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestSnowflakeGenerator_Concurrent(t *testing.T) {
	gen, err := newSnowflakeGenerator(1)
	require.NoError(t, err)

	const workers, perWorker = 8, 2000
	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for range perWorker {
				ids = append(ids, gen.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
