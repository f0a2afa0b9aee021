package base

import (
	"context"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/obsmeta/pkg/obs"
	"github.com/hashicorp-forge/obsmeta/pkg/projectconfig"
)

// PasswordEnvVar names the environment variable holding the API password.
// The password is never read from flags or definition files.
const PasswordEnvVar = "OBS_PASSWORD"

// Command is embedded by every obsmeta command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem definition files are read from.
	Fs afero.Fs
}

// NewCommand returns a Command reading from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// ConfigFlags are the flags shared by commands that read definitions and
// talk to the build service.
type ConfigFlags struct {
	Config   string
	URL      string
	Username string
}

// Register adds the shared flags to f.
func (cf *ConfigFlags) Register(f *FlagSet) {
	f.StringVar(
		&cf.Config, "config", "",
		"[OBSMETA_CONFIG] Path to the definitions file (.hcl, .json, .yaml)",
	)
	f.StringVar(
		&cf.URL, "url", "",
		"API base URL, overrides the api block",
	)
	f.StringVar(
		&cf.Username, "username", "",
		"API username, overrides the api block",
	)
}

// LoadConfig reads the definitions file named by the -config flag, falling
// back to OBSMETA_CONFIG and then the default path. A missing default file
// yields an empty configuration so that flags alone are enough to reach the
// service.
func (c *Command) LoadConfig(cf *ConfigFlags) (*projectconfig.Config, error) {
	if cf.Config != "" {
		return projectconfig.Load(c.Fs, cf.Config)
	}
	if os.Getenv("OBSMETA_CONFIG") == "" {
		if ok, _ := afero.Exists(c.Fs, projectconfig.DefaultConfigPath); !ok {
			c.Log.Debug("no definitions file found", "path", projectconfig.DefaultConfigPath)
			return &projectconfig.Config{}, nil
		}
	}
	return projectconfig.LoadFromEnv(c.Fs)
}

// NewClient builds an API client from the api block, the flag overrides and
// the password environment variable.
func (c *Command) NewClient(cfg *projectconfig.Config, cf *ConfigFlags) (*obs.Client, error) {
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	if cf.URL != "" {
		clientCfg.BaseURL = cf.URL
	}
	if cf.Username != "" {
		clientCfg.Username = cf.Username
	}
	clientCfg.Password = os.Getenv(PasswordEnvVar)

	return obs.NewClient(clientCfg, c.Log)
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
