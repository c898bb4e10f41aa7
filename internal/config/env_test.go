package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("INVADERS_TEST_SET", "value")
	t.Setenv("INVADERS_TEST_EMPTY", "")

	tests := []struct {
		key, fallback, want string
	}{
		{"INVADERS_TEST_SET", "fallback", "value"},
		{"INVADERS_TEST_EMPTY", "fallback", ""},
		{"INVADERS_TEST_UNSET", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetEnv(tt.key, tt.fallback); got != tt.want {
				t.Errorf("GetEnv(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		set      bool
		fallback bool
		want     bool
	}{
		{"1", true, false, true},
		{"true", true, false, true},
		{"yes", true, false, true},
		{"0", true, true, false},
		{"off", true, true, false},
		{"maybe", true, true, true},
		{"", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if tt.set {
				t.Setenv("INVADERS_TEST_BOOL", tt.value)
			}
			if got := GetEnvBool("INVADERS_TEST_BOOL", tt.fallback); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
