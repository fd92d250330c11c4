package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("TABLE_PREFIX", "")
	t.Setenv("STORE", "")
	t.Setenv("MAX_PAGE_SIZE", "")

	cfg := Load()

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.TablePrefix != "dev_" {
		t.Errorf("TablePrefix = %q, want dev_", cfg.TablePrefix)
	}
	if cfg.Store != StorePostgres {
		t.Errorf("Store = %q, want %q", cfg.Store, StorePostgres)
	}
	if cfg.MaxPageSize != MaxPageSize || cfg.DefaultPageSize != DefaultPageSize {
		t.Errorf("page sizes = %d/%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
}

func TestGetTablePrefix(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     string
	}{
		{name: "prod", env: "prod", want: "prod_"},
		{name: "test", env: "test", want: "test_"},
		{name: "unknown falls back to dev", env: "staging", want: "dev_"},
		{name: "explicit override", env: "prod", override: "ci_", want: "ci_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TABLE_PREFIX", tt.override)
			if got := getTablePrefix(tt.env); got != tt.want {
				t.Errorf("getTablePrefix(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"25", 25},
		{"", 10},
		{"abc", 10},
		{"-3", 10},
	}

	for _, tt := range tests {
		t.Setenv("TASKLIST_TEST_INT", tt.value)
		if got := getEnvInt("TASKLIST_TEST_INT", 10); got != tt.want {
			t.Errorf("getEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
