package render

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
)

const definitions = `
project "home:alice" {
  title = "t"

  person "bob" {
    role = "reader"
  }

  package "foo" {
    title   = "Foo"
    scmsync = "https://src.example.org/foo"
  }
  package "bad/name" {
    title = "Bad"
  }
}
`

func newCommand(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "defs.hcl", []byte(definitions), 0o644))

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{Log: hclog.NewNullLogger(), UI: ui, Fs: fs}}, ui
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "project",
			args: []string{"-config", "defs.hcl", "-project", "home:alice"},
			want: `<project name="home:alice">
  <title>t</title>
  <description></description>
  <person userid="bob" role="reader"></person>
</project>
`,
		},
		{
			name: "package",
			args: []string{"-config", "defs.hcl", "-project", "home:alice", "-package", "foo"},
			want: `<package name="foo">
  <title>Foo</title>
  <description></description>
  <scmsync>https://src.example.org/foo</scmsync>
</package>
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand(t)
			require.Equal(t, 0, c.Run(tt.args), ui.ErrorWriter.String())
			assert.Equal(t, tt.want, ui.OutputWriter.String())
		})
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no project", args: []string{"-config", "defs.hcl"}, wantErr: "project flag is required"},
		{name: "unknown project", args: []string{"-config", "defs.hcl", "-project", "home:bob"}, wantErr: "project not found: home:bob"},
		{name: "unknown package", args: []string{"-config", "defs.hcl", "-project", "home:alice", "-package", "bar"}, wantErr: "package not found"},
		{name: "invalid package", args: []string{"-config", "defs.hcl", "-project", "home:alice", "-package", "bad/name"}, wantErr: "invalid package bad/name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand(t)
			assert.Equal(t, 1, c.Run(tt.args))
			assert.Contains(t, ui.ErrorWriter.String(), tt.wantErr)
			assert.Empty(t, ui.OutputWriter.String())
		})
	}
}

func TestRender_Help(t *testing.T) {
	c, _ := newCommand(t)
	help := c.Help()
	assert.Contains(t, help, "Usage: obsmeta render")
	assert.Contains(t, help, "-project <string>")
	assert.NotEmpty(t, c.Synopsis())
}
