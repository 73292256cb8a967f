package config

import (
	"os"
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.DiscordToken != "test-token" {
		t.Errorf("Expected token to be read, got %q", cfg.DiscordToken)
	}
	if cfg.StoragePath != "datastore.json" {
		t.Errorf("Expected default storage path, got %q", cfg.StoragePath)
	}
	if !reflect.DeepEqual(cfg.DefaultPrefixes, []string{"!"}) {
		t.Errorf("Expected default prefixes [!], got %v", cfg.DefaultPrefixes)
	}
	if cfg.StatusAddr != ":8787" {
		t.Errorf("Expected default status address, got %q", cfg.StatusAddr)
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DEFAULT_PREFIXES", "?,;;")
	t.Setenv("STAFF_IDS", "1,2")
	t.Setenv("STORAGE_PATH", "/tmp/clerk.json")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.DefaultPrefixes, []string{"?", ";;"}) {
		t.Errorf("Expected custom prefixes, got %v", cfg.DefaultPrefixes)
	}
	if !reflect.DeepEqual(cfg.StaffIDs, []string{"1", "2"}) {
		t.Errorf("Expected staff IDs, got %v", cfg.StaffIDs)
	}
	if !cfg.IsStaff("1") || cfg.IsStaff("3") {
		t.Error("Expected IsStaff to match only listed IDs")
	}
	if cfg.StoragePath != "/tmp/clerk.json" {
		t.Errorf("Expected overridden storage path, got %q", cfg.StoragePath)
	}
}

func TestNewRequiresToken(t *testing.T) {
	os.Unsetenv("DISCORD_TOKEN")

	if _, err := New(); err == nil {
		t.Error("Expected an error when DISCORD_TOKEN is unset")
	}
}
