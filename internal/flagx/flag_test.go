package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", "http://localhost:8080/", "-x", "1"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-a", "http://localhost:8080/"},
		},
		{
			name:         "equals form",
			args:         []string{"-s=redis://localhost:6379/0", "-a", "http://api/"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s=redis://localhost:6379/0"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-l", "-b", "zap"},
			allowedFlags: []string{"-l", "-b"},
			want:         []string{"-l", "-b", "zap"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFilePath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFilePath([]string{"-a", "x", "-config", "/path/long.json"}))
	assert.Empty(t, ConfigFilePath([]string{"-x", "1", "-y", "2"}))
	assert.Equal(t, "/path/2.json", ConfigFilePath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
}
