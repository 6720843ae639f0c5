// Package config loads the settings that locate and parameterise the LIBSVM toolkit.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the name of the configuration file in the user's home directory.
const FileName = ".arff2libsvm"

// Config holds the settings shared by every stage.
type Config struct {
	// LibSVMDir contains the svm-scale, svm-train and svm-predict binaries.
	LibSVMDir    string  `toml:"libsvm_dir"`
	ScaleLower   float64 `toml:"scale_lower"`
	TrainCacheMB float64 `toml:"train_cache_mb"`
	// Split is the fraction of the prepared dataset used for training.
	Split       float64 `toml:"split"`
	LabelAnchor string  `toml:"label_anchor"`
}

// Default returns the settings used when no configuration file exists.
func Default(home string) Config {
	return Config{
		LibSVMDir:    filepath.Join(home, "git", "libsvm"),
		ScaleLower:   0,
		TrainCacheMB: 2048,
		Split:        0.5,
		LabelAnchor:  "2017",
	}
}

// DefaultPath is the configuration file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the TOML file at path over the defaults. A missing file is not an error. The environment variables
// ARFF2LIBSVM_LIBSVM_DIR and ARFF2LIBSVM_SPLIT override the file.
func Load(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	c := Default(home)

	if _, err := toml.DecodeFile(path, &c); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}

	if v := os.Getenv("ARFF2LIBSVM_LIBSVM_DIR"); v != "" {
		c.LibSVMDir = v
	}
	if v := os.Getenv("ARFF2LIBSVM_SPLIT"); v != "" {
		c.Split, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "ARFF2LIBSVM_SPLIT")
		}
	}

	return c, c.Validate()
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Split < 0 || c.Split > 1 {
		return errors.Errorf("split %v outside [0, 1]", c.Split)
	}
	if len(c.LibSVMDir) == 0 {
		return errors.New("libsvm_dir is empty")
	}
	if c.TrainCacheMB <= 0 {
		return errors.Errorf("train_cache_mb %v must be positive", c.TrainCacheMB)
	}
	return nil
}
