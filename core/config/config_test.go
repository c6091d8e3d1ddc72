package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "inventory.db", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, "backups", cfg.Storage.BackupPrefix)

	assert.Equal(t, "inventory.csv", cfg.Inventory.SeedCSV)
	assert.True(t, cfg.Inventory.ImportOnStart)
	assert.Equal(t, "backup.csv", cfg.Inventory.BackupPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_PORT", "3307")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("INVENTORY_IMPORT_ON_START", "false")
	t.Setenv("INVENTORY_BACKUP_PATH", "/tmp/out.csv")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Inventory.ImportOnStart)
	assert.Equal(t, "/tmp/out.csv", cfg.Inventory.BackupPath)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "LOG_LEVEL=debug\nINVENTORY_SEED_CSV=seed.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	// godotenv.Overload writes into the process environment; restore it afterwards.
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("INVENTORY_SEED_CSV", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "seed.csv", cfg.Inventory.SeedCSV)
}
