package parser

import (
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/core"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of Config.
//
//	modules: [gnss, ais, heading]   # or "gnss ais", or "all"
//	validate_checksums: true
type FileConfig struct {
	Modules           any   `yaml:"modules"`
	ValidateChecksums *bool `yaml:"validate_checksums"`
}

func LoadConfigBytes(data []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, errors.Wrap(err, "parser config: invalid yaml")
	}
	return fc, nil
}

func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()
	fc := &FileConfig{}
	if err = yaml.NewDecoder(f).Decode(fc); err != nil {
		return nil, errors.Wrapf(err, "parser config: decode %s", path)
	}
	return fc, nil
}

// Config converts the file form into a Config. Missing keys fall back to
// DefaultConfig.
func (fc *FileConfig) Config() (Config, error) {
	cfg := DefaultConfig()
	if fc == nil {
		return cfg, nil
	}
	if fc.ValidateChecksums != nil {
		cfg.ValidateChecksums = *fc.ValidateChecksums
	}
	if fc.Modules == nil {
		return cfg, nil
	}

	names, err := cast.ToStringSliceE(fc.Modules)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parser config: modules must be a list or a string, got %T", fc.Modules)
	}
	var mask core.ModuleMask
	for _, name := range names {
		for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == ',' || r == ' ' }) {
			if strings.EqualFold(part, "all") {
				mask = core.AllModules
				continue
			}
			id, ok := core.ParseModuleName(part)
			if !ok {
				return Config{}, errors.Errorf("parser config: unknown module '%s'", part)
			}
			mask = mask.With(id)
		}
	}
	cfg.EnabledModules = mask
	return cfg, nil
}
