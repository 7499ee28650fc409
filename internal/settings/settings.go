package settings

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"json2reqif/internal/convert"
)

// EnvPrefix prefixes environment overrides, e.g. JSON2REQIF_IDS_SEED.
const EnvPrefix = "JSON2REQIF"

// DefaultMapping is the mapping file used when none is given.
const DefaultMapping = "mapping_config.json"

// Settings are the runtime options of the command line tool.
type Settings struct {
	// Mapping is the mapping file path.
	Mapping   string `mapstructure:"mapping"`
	Verbosity int    `mapstructure:"verbosity"`

	Log    LogSettings    `mapstructure:"log"`
	IDs    IDSettings     `mapstructure:"ids"`
	Output OutputSettings `mapstructure:"output"`
	Header HeaderSettings `mapstructure:"header"`
}

// LogSettings selects the log format.
type LogSettings struct {
	JSON bool `mapstructure:"json"`
}

// IDSettings controls identifier generation.
type IDSettings struct {
	// Seed makes identifiers reproducible when set.
	Seed string `mapstructure:"seed"`
}

// OutputSettings controls the written document.
type OutputSettings struct {
	Indent bool `mapstructure:"indent"`
}

// HeaderSettings overrides header values not taken from the mapping.
type HeaderSettings struct {
	Title string `mapstructure:"title"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// SetDefaults configures default values for all settings.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mapping", DefaultMapping)
	v.SetDefault("verbosity", 0)
	v.SetDefault("log.json", false)
	v.SetDefault("ids.seed", "")
	v.SetDefault("output.indent", true)
	v.SetDefault("header.title", convert.DefaultTitle)
}

// Load reads the optional settings file at path and decodes v.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read settings file %s", path)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}

	return &s, nil
}
