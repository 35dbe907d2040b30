package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestNewConfigStoreWith_CopiesSeed(t *testing.T) {
	seed := map[string]any{"units.height": "ft"}
	store := NewConfigStoreWith(seed)

	seed["units.height"] = "cm"
	assert.Equal(t, "ft", store.GetString("units.height"))
}

func TestConfigStore_Getters(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		wantString string
		wantInt    int
		wantFloat  float64
		wantBool   bool
	}{
		{"string", "lbs", "lbs", 0, 0, false},
		{"int", 20, "", 20, 20, false},
		{"int64", int64(7), "", 7, 7, false},
		{"float64", 2.5, "", 2, 2.5, false},
		{"bool", true, "", 0, 0, true},
		{"nil", nil, "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			require.NoError(t, store.Set("k", tt.value))

			assert.Equal(t, tt.wantString, store.GetString("k"))
			assert.Equal(t, tt.wantInt, store.GetInt("k"))
			assert.Equal(t, tt.wantFloat, store.GetFloat("k"))
			assert.Equal(t, tt.wantBool, store.GetBool("k"))
		})
	}
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Concurrency_ReadWriteMix(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("server.burst", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("server.burst")
		}()
	}
	wg.Wait()

	_, ok := store.Get("server.burst")
	assert.True(t, ok)
}
