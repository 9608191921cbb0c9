package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// explicit config path is given.
const DefaultConfigFile = "sprite-tools.yaml"

// File mirrors the defaults file. Pointer fields distinguish a key that
// is present from one that is absent, so absent keys never clobber
// built-in defaults.
type File struct {
	OutDir *string     `yaml:"out_dir"`
	Scale  *float64    `yaml:"scale"`
	Align  *string     `yaml:"align"`
	Jobs   *int        `yaml:"jobs"`
	Shadow *ShadowFile `yaml:"shadow"`
}

// ShadowFile is the shadow section of the defaults file.
type ShadowFile struct {
	OffsetX *int     `yaml:"offset_x"`
	OffsetY *int     `yaml:"offset_y"`
	Blur    *int     `yaml:"blur"`
	Color   *string  `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

// LoadFile reads the defaults file at path. An empty path probes
// DefaultConfigFile and tolerates its absence; an explicit path must
// exist.
func LoadFile(path string) (File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return file, nil
}
