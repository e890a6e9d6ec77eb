package storage

import (
	"path/filepath"
	"testing"
	"time"

	"treasury/internal/config"
	"treasury/internal/kvstore"
	"treasury/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestOpenMemory(t *testing.T) {
	h, err := Open(&config.Config{StorageDriver: config.DriverMemory, StorageTimeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Close()

	h.Store.Set("greeting", "hello")
	if got := kvstore.Get(h.Store, "greeting", ""); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestOpenSQLitePersists(t *testing.T) {
	cfg := &config.Config{
		StorageDriver:  config.DriverSQLite,
		StorageTimeout: time.Second,
		SQLitePath:     filepath.Join(t.TempDir(), "treasury.db"),
	}

	first, err := Open(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Store.Set("counter", 7)
	if err := first.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	second, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	if got := kvstore.Get(second.Store, "counter", 0); got != 7 {
		t.Errorf("expected 7 after reopen, got %d", got)
	}
}

func TestOpenRedisUnreachable(t *testing.T) {
	cfg := &config.Config{
		StorageDriver:  config.DriverRedis,
		StorageTimeout: 200 * time.Millisecond,
		RedisAddr:      "127.0.0.1:1",
	}

	if _, err := Open(cfg); err == nil {
		t.Fatal("expected connection error")
	}
}
