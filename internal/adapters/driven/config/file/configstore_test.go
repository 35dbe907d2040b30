package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	store, err := NewConfigStore("~/custom")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "custom", "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("units.height", "ft"))
	require.NoError(t, store.Set("server.burst", 42))
	require.NoError(t, store.Set("server.rate_limit", 2.5))
	require.NoError(t, store.Set("output.scale", true))

	assert.Equal(t, "ft", store.GetString("units.height"))
	assert.Equal(t, 42, store.GetInt("server.burst"))
	assert.Equal(t, 42.0, store.GetFloat("server.burst"))
	assert.Equal(t, 2.5, store.GetFloat("server.rate_limit"))
	assert.True(t, store.GetBool("output.scale"))

	// Wrong types and missing keys fall back to zero values.
	assert.Equal(t, "", store.GetString("server.burst"))
	assert.Equal(t, 0, store.GetInt("units.height"))
	assert.Equal(t, 0.0, store.GetFloat("units.height"))
	assert.False(t, store.GetBool("units.height"))
	assert.Equal(t, "", store.GetString("missing"))
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("units.height", "ft"))
	require.NoError(t, store1.Set("units.weight", "lbs"))
	require.NoError(t, store1.Set("server.burst", 5))
	require.NoError(t, store1.Set("server.rate_limit", 1.5))
	require.NoError(t, store1.Set("output.scale", false))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "ft", store2.GetString("units.height"))
	assert.Equal(t, "lbs", store2.GetString("units.weight"))
	assert.Equal(t, 5, store2.GetInt("server.burst"))
	assert.Equal(t, 1.5, store2.GetFloat("server.rate_limit"))
	_, ok := store2.Get("output.scale")
	assert.True(t, ok)
	assert.False(t, store2.GetBool("output.scale"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("units.height", "cm"))
	require.NoError(t, store.Set("log.level", "debug"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[units]")
	assert.Contains(t, content, "[log]")
	assert.NotContains(t, content, "units.height")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[units]\nheight = \"ft\"\nweight = \"lbs\"\n\n[server]\naddr = \":9090\"\nburst = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "ft", store.GetString("units.height"))
	assert.Equal(t, "lbs", store.GetString("units.weight"))
	assert.Equal(t, ":9090", store.GetString("server.addr"))
	assert.Equal(t, 3, store.GetInt("server.burst"))
}

func TestConfigStore_KeyConflict(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("server.addr", ":1"))

	err = store.Set("server", "flat")
	assert.Error(t, err)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("units.height", "cm"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["output.format"] = "json"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "json", store2.GetString("output.format"))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("units.height", "cm"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("units.weight", "kg"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("units.height", "cm"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "bench.key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetFloat(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 7, store.GetInt("bench.key7"))
}

func TestNestMap(t *testing.T) {
	tree, err := nestMap(map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}, tree)

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, flattenMap(tree, ""))
}
