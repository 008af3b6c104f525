package database

import (
	"testing"

	"quiz_backend/internal/config"
)

func TestShouldMigrate(t *testing.T) {
	cases := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{"debug 模式默认迁移", "debug", false, true},
		{"release 模式默认跳过", "release", false, false},
		{"release 模式 -migrate 强制迁移", "release", true, true},
		{"debug 模式 -migrate 仍然迁移", "debug", true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{ForceMigrate: tc.force}
			cfg.Server.Mode = tc.mode
			if got := shouldMigrate(cfg); got != tc.want {
				t.Fatalf("mode=%q force=%v: got %v, want %v", tc.mode, tc.force, got, tc.want)
			}
		})
	}
}
