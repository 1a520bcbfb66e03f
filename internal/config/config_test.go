package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_MONTHS", "")
	t.Setenv("DEFAULT_SALARY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.MaxMonths != 600 {
		t.Errorf("expected max months 600, got %d", cfg.MaxMonths)
	}
	if cfg.DefaultSalary != 100000 {
		t.Errorf("expected default salary 100000, got %f", cfg.DefaultSalary)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(*testing.T, *Config)
	}{
		{
			name:  "port",
			key:   "PORT",
			value: "9090",
			check: func(t *testing.T, c *Config) {
				if c.Port != 9090 {
					t.Errorf("expected 9090, got %d", c.Port)
				}
			},
		},
		{
			name:  "malformed int keeps default",
			key:   "MAX_MONTHS",
			value: "many",
			check: func(t *testing.T, c *Config) {
				if c.MaxMonths != 600 {
					t.Errorf("expected default 600, got %d", c.MaxMonths)
				}
			},
		},
		{
			name:  "salary",
			key:   "DEFAULT_SALARY",
			value: "250000.5",
			check: func(t *testing.T, c *Config) {
				if c.DefaultSalary != 250000.5 {
					t.Errorf("expected 250000.5, got %f", c.DefaultSalary)
				}
			},
		},
		{
			name:  "sqlite path",
			key:   "SQLITE_PATH",
			value: "/tmp/wealth.db",
			check: func(t *testing.T, c *Config) {
				if c.SQLitePath != "/tmp/wealth.db" {
					t.Errorf("unexpected sqlite path %q", c.SQLitePath)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
