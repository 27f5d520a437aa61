package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-d", "/tmp/s.db", "-t", "5", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "http://127.0.0.1:9090",
				DatabasePath:   "/tmp/s.db",
				RequestTimeout: 5 * time.Second,
				LogLevel:       "debug",
			},
		},
		{
			name:     "config flag is ignored here",
			args:     []string{"cmd", "-c", "cfg.json", "-a", "http://h"},
			expected: &Config{APIBaseURL: "http://h"},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_TimeoutKeptWhenFlagAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{RequestTimeout: 1500 * time.Millisecond}
	parseFlags(cfg)

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-a", "x", "-z", "y"}, []string{"-a"}, []string{"-a", "x"}},
		{"equals form", []string{"-config=c.json", "-a=1"}, []string{"-config"}, []string{"-config=c.json"}},
		{"flag without value", []string{"-a", "-b"}, []string{"-a"}, []string{"-a"}},
		{"nothing allowed", []string{"-a", "x"}, nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterArgs(tt.args, tt.allowed...))
		})
	}
}
