package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type bundleFile struct {
	Default string   `yaml:"default"`
	Bundles []Bundle `yaml:"bundles"`
}

// LoadBundles reads YAML bundle definitions and registers them,
// letting deployments add brand variants without recompiling. The
// document may name a default bundle; when it does, the registry
// fallback is repointed at it.
func LoadBundles(r *Registry, src io.Reader) error {
	if r == nil {
		return fmt.Errorf("format: registry is required")
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("format: read bundle file: %w", err)
	}

	var file bundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("format: parse bundle file: %w", err)
	}

	for _, bundle := range file.Bundles {
		if err := r.Register(bundle); err != nil {
			return err
		}
	}
	if file.Default != "" {
		r.SetDefault(file.Default)
	}
	return nil
}
