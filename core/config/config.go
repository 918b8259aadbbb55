package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"floor-plan/core/floorplan"
	"floor-plan/core/logger"
	"floor-plan/core/server"
	"floor-plan/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envFile is read from the directory passed to LoadConfig when present.
const envFile = ".env"

// Config is the full floor-plan configuration, one section per concern.
type Config struct {
	// Plan is the legend: which characters are chairs and which are walls.
	Plan floorplan.Config `mapstructure:"plan"`
	// Server configures the HTTP API started by `floor-plan start`.
	Server server.Config `mapstructure:"server"`
	// Storage points at the bucket used by --remote, batch and upload.
	Storage storage.Config `mapstructure:"storage"`
	// Log selects the log level and encoding.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig reads the configuration from the environment, after loading dir/.env
// over it. Keys map to variables by section, e.g. plan.chair_types is PLAN_CHAIR_TYPES.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, envFile))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}

// registerDefaults walks the section structs and sets every leaf key to its
// `default` tag. AutomaticEnv only resolves keys viper already knows, so keys
// without a default are registered as empty.
func registerDefaults(v *viper.Viper, t reflect.Type, section string) {
	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if section != "" {
			name = section + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
