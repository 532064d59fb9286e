package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-c", "-config", "--config"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "short flag with separate value",
			args: []string{"-c", "conf.json", "-a", "localhost"},
			want: []string{"-c", "conf.json"},
		},
		{
			name: "long flag with equals",
			args: []string{"--config=alt.json", "-a", "localhost"},
			want: []string{"--config=alt.json"},
		},
		{
			name: "short and long present, order preserved",
			args: []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			want: []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name: "unknown flags and positionals dropped",
			args: []string{"-x", "1", "--y=2", "positional"},
			want: []string{},
		},
		{
			name: "trailing flag without value kept",
			args: []string{"-c"},
			want: []string{"-c"},
		},
		{
			name: "next dash token is not consumed as a value",
			args: []string{"-c", "--config=alt.json"},
			want: []string{"-c", "--config=alt.json"},
		},
		{
			name: "equals form keeps dash-prefixed value",
			args: []string{"--config=--weird.json"},
			want: []string{"--config=--weird.json"},
		},
		{
			name: "repeated flag preserved in order",
			args: []string{"-c", "one.json", "-c", "two.json"},
			want: []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("no config flag yields empty path", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
