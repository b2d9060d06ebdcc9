package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mysql": map[string]any{
			"maxOpenConns": 10,
			"connMaxLifetime": "5m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"passwordStrength": map[string]any{
			"minLength": 8,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MYSQL_MAXOPENCONNS", want: "mysql.maxOpenConns"},
		{envKey: "MYSQL_CONNMAXLIFETIME", want: "mysql.connMaxLifetime"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PASSWORDSTRENGTH_MINLENGTH", want: "passwordStrength.minLength"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestMySQLConfig_DSN(t *testing.T) {
	cfg := &MySQLConfig{
		Host:     "127.0.0.1",
		Port:     "3306",
		Username: "koru",
		Password: "secret",
		Database: "koru",
		Params:   "charset=utf8mb4",
	}

	want := "koru:secret@tcp(127.0.0.1:3306)/koru?parseTime=true&charset=utf8mb4"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
