package cmd

import (
	"sort"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	initCommands(hclog.NewNullLogger(), cli.NewMockUi())

	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"delete", "fetch", "publish", "render", "version"}, names)

	for name, factory := range Commands {
		c, err := factory()
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.Contains(t, c.Help(), "Usage: obsmeta "+name, name)
	}
}
