package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix starts every environment variable read as configuration.
const EnvPrefix = "FLATLINT_"

// WorkspaceFiles are looked up in the workspace root, first match wins.
var WorkspaceFiles = []string{"flatlint.toml", ".flatlint.toml", "flatlint.yaml"}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Sources lists the files a Load reads. Empty fields are skipped.
type Sources struct {
	// UserFile is the per-user config file
	UserFile string
	// WorkspaceDir is searched for one of WorkspaceFiles
	WorkspaceDir string
	// Env toggles reading FLATLINT_* variables
	Env bool
	// Overrides are dotted keys applied last, e.g. "output.format"
	Overrides map[string]any
}

// DefaultSources reads every layer for the given workspace.
func DefaultSources(workspaceDir string) Sources {
	return Sources{
		UserFile:     paths.UserConfigPath(),
		WorkspaceDir: workspaceDir,
		Env:          true,
	}
}

// Load merges the configured sources into a Config.
func Load(src Sources) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	if src.UserFile != "" {
		if _, err := os.Stat(src.UserFile); err == nil {
			if err := k.Load(file.Provider(src.UserFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", src.UserFile).
					WithDetail("file", src.UserFile)
			}
			logger.Debug().Str("file", src.UserFile).Msg("Loaded user config")
		}
	}

	// 3. Workspace file
	if src.WorkspaceDir != "" {
		if path := FindWorkspaceFile(src.WorkspaceDir); path != "" {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load workspace config from %s", path).
					WithDetail("file", path)
			}
			logger.Debug().Str("file", path).Msg("Loaded workspace config")
		}
	}

	// 4. Environment
	if src.Env {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Programmatic overrides
	if len(src.Overrides) > 0 {
		if err := k.Load(confmap.Provider(src.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Options = canonicalKeys(cfg.Options)
	if cfg.Options == nil {
		cfg.Options = map[string]any{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindWorkspaceFile returns the workspace config file in dir, or "".
func FindWorkspaceFile(dir string) string {
	for _, name := range WorkspaceFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envValue maps FLATLINT_OPTIONS_TYPESCRIPT=false to options.typescript and
// parses booleans and integers.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	return key, ScalarValue(value)
}

// ScalarValue parses booleans and integers, leaving anything else a string.
func ScalarValue(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// optionKeys are the top-level option names, for restoring case lost in
// environment variable names.
var optionKeys = []string{
	options.KeyGitignore, options.KeyJavaScript, options.KeyTypeScript,
	options.KeyStylistic, options.KeyJSDoc, options.KeyRegexp,
	options.KeyUnicorn, options.KeyAngular, options.KeyNgRx,
	options.KeyVitest, options.KeyTailwind, options.KeyJSONC,
	options.KeyYAML, options.KeyTOML, options.KeyMarkdown,
	options.KeyFormatters, options.KeyPNPM, options.KeyIgnores,
	options.KeyIsInEditor,
}

func canonicalKeys(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if canonicalKey(k) == k {
			out[k] = v
		}
	}
	// folded keys come from the environment, which wins
	for k, v := range in {
		if c := canonicalKey(k); c != k {
			out[c] = v
		}
	}
	return out
}

func canonicalKey(k string) string {
	for _, known := range optionKeys {
		if strings.EqualFold(k, known) {
			return known
		}
	}
	return k
}
