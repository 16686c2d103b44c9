// Package config resolves where srcstruct reads from and writes to. Values
// come from defaults, an optional config file, SRCSTRUCT_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Keys understood in config files and, upper-cased with the SRCSTRUCT_
// prefix, in the environment.
const (
	KeyBase   = "base"
	KeyRoots  = "roots"
	KeyOutput = "output"
	KeyDebug  = "debug"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "SRCSTRUCT"
	// ConfigName is the config file name searched for, without extension.
	ConfigName = "srcstruct"

	DefaultBase   = "."
	DefaultOutput = "src_structure.txt"
)

// DefaultRoots are exported when neither arguments nor configuration name any.
var DefaultRoots = []string{"src", "prisma"}

// ErrEmptyOutput is returned when no destination path is configured.
var ErrEmptyOutput = errors.New("output path must not be empty")

// Config holds the export settings. Relative Roots and Output are relative
// to Base.
type Config struct {
	Base   string   // Directory relative roots and output are joined to.
	Roots  []string // Directories to export, in order.
	Output string   // Destination file.
	Debug  bool     // Enables development logging.
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBase, DefaultBase)
	v.SetDefault(KeyRoots, DefaultRoots)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyDebug, false)
}

// ReadInConfig wires environment lookup and reads the config file. With an
// empty cfgFile the file is searched for in the working directory and in
// $HOME/.config/srcstruct, and not finding one is not an error.
func ReadInConfig(v *viper.Viper, cfgFile string, logger *zap.Logger) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to expand config path %q: %w", cfgFile, err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			logger.Debug("No config file found, using defaults and flags")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	logger.Debug("Using config file", zap.String("file", v.ConfigFileUsed()))
	return nil
}

// FromViper extracts a Config from v.
func FromViper(v *viper.Viper) Config {
	return Config{
		Base:   v.GetString(KeyBase),
		Roots:  v.GetStringSlice(KeyRoots),
		Output: v.GetString(KeyOutput),
		Debug:  v.GetBool(KeyDebug),
	}
}

// Resolve returns the absolute root directories and destination path.
// A leading ~ is expanded to the user's home directory.
func (c Config) Resolve() ([]string, string, error) {
	if strings.TrimSpace(c.Output) == "" {
		return nil, "", ErrEmptyOutput
	}

	base := c.Base
	if base == "" {
		base = DefaultBase
	}
	base, err := absPath(base, "")
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve base directory: %w", err)
	}

	roots := make([]string, 0, len(c.Roots))
	for _, root := range c.Roots {
		resolved, err := absPath(root, base)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve root %q: %w", root, err)
		}
		roots = append(roots, resolved)
	}

	output, err := absPath(c.Output, base)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve output %q: %w", c.Output, err)
	}
	return roots, output, nil
}

func absPath(path, base string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) && base != "" {
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Abs(expanded)
}
