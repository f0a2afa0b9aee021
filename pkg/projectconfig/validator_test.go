package projectconfig

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/obsmeta/pkg/meta"
)

func intPtr(i int) *int { return &i }

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		wantErrs []string
	}{
		{
			name: "valid",
			cfg: &Config{
				API: &APIConfig{URL: "https://api.opensuse.org", Timeout: "5s"},
				Projects: []*ProjectDef{{
					Name:     "home:alice",
					Title:    "t",
					Persons:  []*PersonDef{{UserID: "alice"}},
					Packages: []*PackageDef{{Name: "foo", Title: "Foo"}},
				}},
			},
		},
		{
			name:     "bad timeout",
			cfg:      &Config{API: &APIConfig{Timeout: "soon"}},
			wantErrs: []string{"api: invalid api timeout"},
		},
		{
			name:     "negative retries",
			cfg:      &Config{API: &APIConfig{MaxRetries: intPtr(-1)}},
			wantErrs: []string{"api.max_retries: must be non-negative"},
		},
		{
			name: "duplicate project",
			cfg: &Config{Projects: []*ProjectDef{
				{Name: "home:alice", Title: "a"},
				{Name: "home:alice", Title: "b"},
			}},
			wantErrs: []string{`project "home:alice": duplicate project`},
		},
		{
			name: "duplicate package",
			cfg: &Config{Projects: []*ProjectDef{{
				Name:  "home:alice",
				Title: "a",
				Packages: []*PackageDef{
					{Name: "foo", Title: "Foo"},
					{Name: "foo", Title: "Foo again"},
				},
			}}},
			wantErrs: []string{`project "home:alice" package "foo": duplicate package`},
		},
		{
			name: "entity rules are reported per entity",
			cfg: &Config{Projects: []*ProjectDef{{
				Name:    "home/alice",
				Title:   "a",
				Persons: []*PersonDef{{UserID: "bob", Role: "owner"}},
				Packages: []*PackageDef{
					{Name: "", Title: "nameless"},
				},
			}}},
			wantErrs: []string{
				`project "home/alice": name: must be in a valid format`,
				"role: must be a valid value",
				`project "home/alice" package "": name: cannot be blank`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}

			var merr *multierror.Error
			require.True(t, errors.As(err, &merr))

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{Projects: []*ProjectDef{
		{Name: "a", Title: "A", Packages: []*PackageDef{{Name: "x", Title: "X"}, {Name: "x", Title: "X"}}},
		{Name: "a", Title: "A"},
		{Name: "", Title: "nameless"},
	}}

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func TestPersonDef_RoleDefaultsToMaintainer(t *testing.T) {
	assert.Equal(t, meta.Person{UserID: "alice", Role: meta.RoleMaintainer}, (&PersonDef{UserID: "alice"}).Person())
	assert.Equal(t, meta.Person{UserID: "bob", Role: meta.RoleReader}, (&PersonDef{UserID: "bob", Role: "reader"}).Person())
}

func TestConfig_Lookup(t *testing.T) {
	cfg := &Config{Projects: []*ProjectDef{{
		Name:     "home:alice",
		Title:    "t",
		Packages: []*PackageDef{{Name: "foo", Title: "Foo"}},
	}}}

	p, err := cfg.GetProject("home:alice")
	require.NoError(t, err)

	pkg, err := p.GetPackage("foo")
	require.NoError(t, err)
	assert.Equal(t, meta.Package{Name: "foo", Title: "Foo"}, pkg.Package())

	_, err = p.GetPackage("bar")
	assert.EqualError(t, err, "package not found in project home:alice: bar")

	_, err = cfg.GetProject("home:bob")
	assert.EqualError(t, err, "project not found: home:bob")

	_, err = cfg.MetaPackages("home:bob")
	assert.Error(t, err)
}

func TestClientConfig_Defaults(t *testing.T) {
	client, err := (&Config{}).ClientConfig()
	require.NoError(t, err)
	assert.Empty(t, client.BaseURL)
	assert.Equal(t, 3, client.MaxRetries)

	tlsVerify := false
	client, err = (&Config{API: &APIConfig{TLSVerify: &tlsVerify, MaxRetries: intPtr(0)}}).ClientConfig()
	require.NoError(t, err)
	require.NotNil(t, client.TLSVerify)
	assert.False(t, *client.TLSVerify)
	assert.Equal(t, 0, client.MaxRetries)
}
