package projectconfig

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/obsmeta/pkg/meta"
)

const testHCL = `
api {
  url         = "https://api.opensuse.org"
  username    = "alice"
  timeout     = "10s"
  max_retries = 5
  retry_delay = "250ms"
}

project "home:alice" {
  title       = "Alice home"
  description = "Playground"

  person "alice" {}
  person "bob" {
    role = "bugowner"
  }

  repository "openSUSE_Tumbleweed" {
    path {
      project    = "openSUSE:Factory"
      repository = "snapshot"
    }
    arch = ["x86_64", "aarch64"]
  }

  package "foo" {
    title   = "Foo"
    scmsync = "https://src.example.org/foo#main"
  }

  package "bar" {
    title       = "Bar"
    description = "The bar tool"
  }
}

project "home:alice:branches" {
  title = "Branches"
}
`

const testYAML = `
api:
  url: https://api.opensuse.org
  username: alice
  timeout: 10s
  max_retries: 5
  retry_delay: 250ms
project:
  - name: "home:alice"
    title: Alice home
    description: Playground
    person:
      - userid: alice
      - userid: bob
        role: bugowner
    repository:
      - name: openSUSE_Tumbleweed
        path:
          - project: "openSUSE:Factory"
            repository: snapshot
        arch: [x86_64, aarch64]
    package:
      - name: foo
        title: Foo
        scmsync: "https://src.example.org/foo#main"
      - name: bar
        title: Bar
        description: The bar tool
  - name: "home:alice:branches"
    title: Branches
`

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestLoad(t *testing.T) {
	fs := memFS(t, map[string]string{
		"defs/obsmeta.hcl":  testHCL,
		"defs/obsmeta.yaml": testYAML,
		"defs/obsmeta.yml":  testYAML,
	})

	wantProject := meta.Project{
		Name:        "home:alice",
		Title:       "Alice home",
		Description: "Playground",
		Person: []meta.Person{
			{UserID: "alice", Role: meta.RoleMaintainer},
			{UserID: "bob", Role: meta.RoleBugowner},
		},
		Repository: []meta.Repository{{
			Name: "openSUSE_Tumbleweed",
			Path: []meta.PathEntry{{Project: "openSUSE:Factory", Repository: "snapshot"}},
			Arch: []string{"x86_64", "aarch64"},
		}},
	}
	wantPackages := []meta.Package{
		{Name: "foo", Title: "Foo", SCMSync: "https://src.example.org/foo#main"},
		{Name: "bar", Title: "Bar", Description: "The bar tool"},
	}

	for _, path := range []string{"defs/obsmeta.hcl", "defs/obsmeta.yaml", "defs/obsmeta.yml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := Load(fs, path)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, []string{"home:alice", "home:alice:branches"}, cfg.ProjectNames())

			projects := cfg.MetaProjects()
			require.Len(t, projects, 2)
			assert.Equal(t, wantProject, projects[0])
			assert.Equal(t, meta.Project{Name: "home:alice:branches", Title: "Branches"}, projects[1])

			packages, err := cfg.MetaPackages("home:alice")
			require.NoError(t, err)
			assert.Equal(t, wantPackages, packages)

			packages, err = cfg.MetaPackages("home:alice:branches")
			require.NoError(t, err)
			assert.Empty(t, packages)

			client, err := cfg.ClientConfig()
			require.NoError(t, err)
			assert.Equal(t, "https://api.opensuse.org", client.BaseURL)
			assert.Equal(t, "alice", client.Username)
			assert.Empty(t, client.Password)
			assert.Equal(t, 10*time.Second, client.Timeout)
			assert.Equal(t, 5, client.MaxRetries)
			assert.Equal(t, 250*time.Millisecond, client.RetryDelay)
			require.NotNil(t, client.TLSVerify)
			assert.True(t, *client.TLSVerify)
		})
	}
}

func TestLoad_HCLJSON(t *testing.T) {
	fs := memFS(t, map[string]string{
		"obsmeta.json": `{
  "project": {
    "home:alice": {
      "title": "Alice home",
      "package": {
        "foo": {"title": "Foo"}
      }
    }
  }
}`,
	})

	cfg, err := Load(fs, "obsmeta.json")
	require.NoError(t, err)
	assert.Nil(t, cfg.API)
	assert.Equal(t, []meta.Project{{Name: "home:alice", Title: "Alice home"}}, cfg.MetaProjects())

	packages, err := cfg.MetaPackages("home:alice")
	require.NoError(t, err)
	assert.Equal(t, []meta.Package{{Name: "foo", Title: "Foo"}}, packages)
}

func TestLoad_Errors(t *testing.T) {
	fs := memFS(t, map[string]string{
		"bad.hcl":     `project "p" { title = }`,
		"unknown.hcl": "project \"p\" {\n  title  = \"t\"\n  colour = \"red\"\n}\n",
		"unknown.yml": "project:\n  - name: p\n    title: t\n    colour: red\n",
		"defs.toml":   `title = "t"`,
		"missing.hcl": `project "p" {}`,
	})

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "empty path", path: "", wantErr: "configuration file path is required"},
		{name: "not found", path: "nope.hcl", wantErr: "configuration file not found: nope.hcl"},
		{name: "hcl syntax", path: "bad.hcl", wantErr: "failed to parse configuration file"},
		{name: "hcl unknown attribute", path: "unknown.hcl", wantErr: "failed to parse configuration file"},
		{name: "yaml unknown key", path: "unknown.yml", wantErr: "field colour not found"},
		{name: "unsupported extension", path: "defs.toml", wantErr: `unsupported configuration file extension ".toml"`},
		{name: "missing required title", path: "missing.hcl", wantErr: "failed to parse configuration file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fs, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	fs := memFS(t, map[string]string{"empty.yaml": ""})

	cfg, err := Load(fs, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Projects)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	fs := memFS(t, map[string]string{
		"custom.hcl":      `project "a" { title = "A" }`,
		DefaultConfigPath: `project "b" { title = "B" }`,
	})

	t.Setenv("OBSMETA_CONFIG", "custom.hcl")
	cfg, err := LoadFromEnv(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cfg.ProjectNames())

	t.Setenv("OBSMETA_CONFIG", "")
	cfg, err = LoadFromEnv(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, cfg.ProjectNames())
}
