package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// TestParseFlags_AllFlags verifies every flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8080",
		"-request-timeout", "10s",
		"-root", "/srv/config",
		"-mod-name", "mymod",
		"-file", "biomes.json",
		"-host-shape", "legacy",
		"-log-level", "warn",
		"-b", "in.json",
		"-o", "out.json",
		"-c", "settings.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/config", cfg.Storage.ConfigRoot)
	assert.Equal(t, "mymod", cfg.App.ModName)
	assert.Equal(t, "biomes.json", cfg.Storage.FileName)
	assert.Equal(t, "legacy", cfg.App.HostShape)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "in.json", cfg.Host.BaselinesPath)
	assert.Equal(t, "out.json", cfg.Host.OutputPath)
	assert.Equal(t, "settings.json", cfg.JSONFilePath)
}

// TestParseFlags_NoFlags verifies that unset flags leave a zero layer.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_ConfigAlias verifies the long form of -c.
func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config=alt.json"})
	require.NoError(t, err)
	assert.Equal(t, "alt.json", cfg.JSONFilePath)
}

// TestParseFlags_Errors verifies that bad arguments are reported, not fatal.
func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrParsingFlags)
		})
	}
}

// TestParseFlags_Help verifies that -h surfaces flag.ErrHelp.
func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// TestJSONPathFromArgs covers the forms accepted before full flag parsing.
func TestJSONPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "none", args: []string{"-b", "in.json"}, want: ""},
		{name: "short", args: []string{"-c", "a.json"}, want: "a.json"},
		{name: "long with equals", args: []string{"--config=b.json"}, want: "b.json"},
		{name: "short with equals", args: []string{"-c=c.json"}, want: "c.json"},
		{name: "dangling flag", args: []string{"-c"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonPathFromArgs(tt.args))
		})
	}
}
