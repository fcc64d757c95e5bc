package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("EVOMONEY_TEST_DIR", "/tmp/evomoney")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty path", in: "", want: ""},
		{name: "plain path", in: "/etc/evomoney.yaml", want: "/etc/evomoney.yaml"},
		{name: "tilde prefix", in: "~/config.yaml", want: filepath.Join(home, "config.yaml")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$EVOMONEY_TEST_DIR/config.yaml", want: "/tmp/evomoney/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
