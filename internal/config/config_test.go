package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "intake.db" {
		t.Fatalf("default db path = %q", cfg.Database.Path)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.yaml")
	data := []byte("server:\n  addr: \":9090\"\ndatabase:\n  path: /tmp/test.db\nstorage:\n  bucket: photos\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Fatalf("db path = %q", cfg.Database.Path)
	}
	if cfg.Storage.Bucket != "photos" {
		t.Fatalf("bucket = %q", cfg.Storage.Bucket)
	}
}

func TestEnvOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.yaml")
	if err := os.WriteFile(path, []byte("database:\n  path: file.db\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INTAKE_DB_PATH", "env.db")
	t.Setenv("R2_BUCKET_NAME", "env-bucket")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "env.db" {
		t.Fatalf("db path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Storage.Bucket != "env-bucket" {
		t.Fatalf("bucket = %q, want env override", cfg.Storage.Bucket)
	}
}

func TestStorageConfigured(t *testing.T) {
	var s StorageConfig
	if s.Configured() {
		t.Fatal("empty storage config reported configured")
	}
	s = StorageConfig{
		AccountID:       "acct",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Bucket:          "bucket",
		PublicBaseURL:   "https://media.example.org",
	}
	if !s.Configured() {
		t.Fatal("complete storage config reported unconfigured")
	}
}
