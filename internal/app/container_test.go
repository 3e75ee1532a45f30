package app

import (
	"os"
	"path/filepath"
	"testing"

	"homefinder/internal/config"
	"homefinder/internal/database/migration"
)

func TestMigrationSource_Embedded(t *testing.T) {
	migs, err := migration.Load(migrationSource(config.AppConfig{}))
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if len(migs) < 2 || migs[0].Name != "create_users" {
		t.Fatalf("unexpected embedded migrations: %+v", migs)
	}
}

func TestMigrationSource_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "V7__add_index.sql"), []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	migs, err := migration.Load(migrationSource(config.AppConfig{MigrationsDir: dir}))
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(migs) != 1 || migs[0].Version != 7 || migs[0].Name != "add_index" {
		t.Fatalf("unexpected migrations: %+v", migs)
	}
}
