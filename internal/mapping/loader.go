package mapping

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadFile reads and parses a mapping file. YAML and JSON are both accepted.
func LoadFile(path string) (*MappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mapping file %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping file %s", path)
	}

	return cfg, nil
}

// Load parses the mapping at path and rejects it if validation reports errors.
func Load(path string) (*MappingConfig, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg).Error(); err != nil {
		return nil, errors.Wrapf(err, "mapping file %s", path)
	}

	return cfg, nil
}

// Parse decodes data as each dialect in turn. The first dialect that both
// decodes and validates wins; if none validates, the first one that decoded
// is returned so the caller can report its diagnostics.
func Parse(data []byte) (*MappingConfig, error) {
	var (
		fallback *MappingConfig
		failures []string
	)

	for _, d := range Dialects() {
		cfg, err := d.decode(data)
		if err != nil {
			failures = append(failures, d.String()+": "+err.Error())
			continue
		}

		applyDefaults(cfg)

		if Validate(cfg).IsValid() {
			return checked(cfg)
		}

		if fallback == nil {
			fallback = cfg
		}
	}

	if fallback != nil {
		return checked(fallback)
	}

	return nil, errors.WithHint(
		errors.Newf("mapping matches no known dialect (%s)", strings.Join(failures, "; ")),
		"standard mappings use plain query strings and a \"config\" header; capella mappings use {root: ...} queries and a \"header\" section",
	)
}

func checked(cfg *MappingConfig) (*MappingConfig, error) {
	if err := CheckVersion(cfg.Version); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *MappingConfig) {
	if cfg.Specification.NameAttribute == "" {
		cfg.Specification.NameAttribute = DefaultNameAttribute
	}

	if cfg.Requirements.ChildrenField == "" {
		cfg.Requirements.ChildrenField = DefaultChildrenField
	}

	if cfg.Requirements.CaptionField == "" {
		cfg.Requirements.CaptionField = DefaultCaptionField
	}
}
