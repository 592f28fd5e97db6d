package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyFrameworkVersion = "framework_version"
	KeyLinkLocal        = "link_local"
	KeyValidateExclude  = "validate.exclude"
	KeyValidateNoIgnore = "validate.no_gitignore"
)

// Keys lists every key accepted by Set.
var Keys = []string{
	KeyFrameworkVersion,
	KeyLinkLocal,
	KeyValidateExclude,
	KeyValidateNoIgnore,
}

// Settings is the resolved view of the config used by commands.
type Settings struct {
	FrameworkVersion string
	LinkLocal        string
	Exclude          []string
	NoGitignore      bool
}

// Dir returns the path to the config directory (~/.smoothjs/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.smoothjs/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyFrameworkVersion, branding.FrameworkVersion())
	viper.SetDefault(KeyLinkLocal, "")
	viper.SetDefault(KeyValidateExclude, []string{})
	viper.SetDefault(KeyValidateNoIgnore, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
// List values are joined with commas.
func Get(key string) string {
	if key == KeyValidateExclude {
		return strings.Join(splitList(viper.GetStringSlice(key)), ",")
	}
	return viper.GetString(key)
}

// Current returns the resolved settings. Load must be called first.
func Current() Settings {
	return Settings{
		FrameworkVersion: viper.GetString(KeyFrameworkVersion),
		LinkLocal:        viper.GetString(KeyLinkLocal),
		Exclude:          splitList(viper.GetStringSlice(KeyValidateExclude)),
		NoGitignore:      viper.GetBool(KeyValidateNoIgnore),
	}
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyValidateExclude {
		viper.Set(key, splitList([]string{value}))
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// splitList flattens comma separated entries (as they arrive from env vars)
// and drops blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
