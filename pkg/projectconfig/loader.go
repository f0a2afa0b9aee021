package projectconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when neither a flag nor OBSMETA_CONFIG names a
// definitions file.
const DefaultConfigPath = "obsmeta.hcl"

// Load reads a definitions file from fs. The format follows the extension:
// .hcl and .json are decoded as HCL (native and JSON syntax), .yaml and .yml
// as YAML. Unknown YAML keys are rejected like unknown HCL attributes.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl", ".json":
		if err := hclsimple.Decode(filepath.Base(path), src, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}

	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported configuration file extension %q", ext)
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by OBSMETA_CONFIG, or DefaultConfigPath.
func LoadFromEnv(fs afero.Fs) (*Config, error) {
	path := os.Getenv("OBSMETA_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}
	return Load(fs, path)
}
