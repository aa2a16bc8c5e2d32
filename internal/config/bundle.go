package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// BundleFile is the layout of a bundle file, everything lives under the wok_lfsr key:
//
//	wok_lfsr:
//	  feedback: 0xC
//	  state: 1
//	  base: ~
//	  pad: false
//	  sequences:
//	    tickets:
//	      feedback: 0xB8
//	      state: B
//	      base: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	      pad: true
type BundleFile struct {
	Lfsr BundleConfig `yaml:"wok_lfsr"`
}

// BundleConfig is the default generator plus any further named generators.
type BundleConfig struct {
	Feedback  string                     `yaml:"feedback"`
	State     string                     `yaml:"state"`
	Base      string                     `yaml:"base"`
	Pad       bool                       `yaml:"pad"`
	Sequences map[string]GeneratorConfig `yaml:"sequences"`
}

// LoadFile reads a bundle file.
func LoadFile(path string) (*BundleConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read lfsr config file: %w", err)
	}
	return ParseBundle(data)
}

// ParseBundle decodes bundle file contents. Missing feedback and state values fall back to
// 0xC and 1.
func ParseBundle(data []byte) (*BundleConfig, error) {
	var file BundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "failed to parse lfsr config file: %v", err)
	}
	return &file.Lfsr, nil
}

// Default returns the top-level generator configuration.
func (b *BundleConfig) Default() GeneratorConfig {
	return GeneratorConfig{
		Feedback: b.Feedback,
		State:    b.State,
		Base:     b.Base,
		Pad:      b.Pad,
	}.withDefaults()
}

// Generators returns the top-level generator under the default name together with every
// entry of the sequences map.
func (b *BundleConfig) Generators() (map[string]GeneratorConfig, error) {
	sequences := make(map[string]GeneratorConfig, len(b.Sequences)+1)
	sequences[lfsrDomain.DefaultSequenceName] = b.Default()

	for name, sequence := range b.Sequences {
		if name == lfsrDomain.DefaultSequenceName {
			return nil, apperrors.Wrapf(
				apperrors.ErrConflict,
				"sequence %q is reserved for the top-level generator",
				name,
			)
		}
		sequences[name] = sequence.withDefaults()
	}

	return sequences, nil
}
