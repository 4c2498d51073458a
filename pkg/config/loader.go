package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "BOOTSTRAP_"

// ProjectConfigFiles are the file names looked up in the project root, in order
var ProjectConfigFiles = []string{".bootstrap.toml", "bootstrap.toml"}

// Load loads the configuration for the project rooted at projectRoot.
// explicitPath, when set, replaces the project file lookup and must exist.
func Load(projectRoot, explicitPath string) (*Config, error) {
	cfg, err := loadLayers(projectRoot, explicitPath, true)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadLayers(projectRoot, explicitPath string, withOverrides bool) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if withOverrides {
		// 2. Load project config if it exists
		path, err := findProjectConfig(projectRoot, explicitPath)
		if err != nil {
			return nil, err
		}
		if path != "" {
			logger.Debug().Str("path", path).Msg("Loading project config")
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path)
			}
		}

		// 3. Load env vars
		known := knownKeys(k)
		if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return envKey(s, known)
		}), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// findProjectConfig returns the project config path, or "" when there is none
func findProjectConfig(projectRoot, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicitPath)
		}
		return explicitPath, nil
	}

	if projectRoot == "" {
		projectRoot = "."
	}
	for _, filename := range ProjectConfigFiles {
		path := filepath.Join(projectRoot, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// knownKeys indexes the loaded keys by their environment spelling, so that
// tools.pre_commit.program is reachable as TOOLS_PRE_COMMIT_PROGRAM. Tables
// of steps are not overridable from the environment.
func knownKeys(k *koanf.Koanf) map[string]string {
	known := make(map[string]string)
	for _, key := range k.Keys() {
		if key == "steps" || strings.HasPrefix(key, "steps.") {
			continue
		}
		known[strings.ReplaceAll(key, ".", "_")] = key
	}
	return known
}

// envKey maps BOOTSTRAP_PACKAGE_OUTPUT_DIR to package.output_dir. Names that
// match no known key map to "", which the env provider skips.
func envKey(s string, known map[string]string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return known[key]
}
