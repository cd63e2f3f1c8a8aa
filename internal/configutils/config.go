package configutils

import (
	"fmt"
	"io"
	"path/filepath"

	"preport/internal/pkg/fs"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const LocalConfigFilename = ".preportcfg"

type FlagSet interface {
	GetString(string) (string, error)
	GetBool(string) (bool, error)
}

type configMerger interface {
	MergeConfig(io.Reader) error
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var configFiletypes = []string{"yaml", "json", "toml"}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	err := cm.MergeConfig(in)
	if err != nil {
		return err
	}

	return nil
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, v *viper.Viper) error {
	f, err := loadFile(filename, fs.OS{})
	if err != nil {
		return err
	}

	return mergeConfig(f, v)
}

// loadAnyType retries the merge once per supported filetype since the
// config file carries no extension hint.
var loadAnyType = func(filename string, v *viper.Viper) error {
	var err error
	for _, ft := range configFiletypes {
		v.SetConfigType(ft)
		err = loadConfig(filename, v)
		if err == nil {
			return nil
		}
	}

	return err
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand("~/.config/preport")
}

// MergeLocalConfig folds the repository-local config file found in path
// into v. A missing local config is not an error.
func MergeLocalConfig(v *viper.Viper, path string) error {
	f := filepath.Join(path, LocalConfigFilename)
	if err := fileExists(f, fs.OS{}); err != nil {
		return nil
	}

	return loadAnyType(f, v)
}

// LoadGlobal populates the global viper instance with the user
// configuration. An explicit path must load or the call fails; the
// well-known files under ~/.config/preport are all optional, as is the
// local config in the working directory.
func LoadGlobal(path string) error {
	v := viper.GetViper()

	if path != "" {
		if err := loadAnyType(path, v); err != nil {
			return errors.Wrap(err, "could not load config")
		}
	} else {
		cfgDir, err := getGlobalConfigDir()
		if err != nil {
			return ErrHomeDirNotFound
		}

		for _, ft := range configFiletypes {
			f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
			v.SetConfigType(ft)
			err = loadConfig(f, v)
			if err == nil {
				break
			}
			log.Debug().
				Msgf("config loading failed for type %s, skipping to next filetype", ft)
		}
	}

	wd, err := fs.OS{}.Getwd()
	if err != nil {
		return nil
	}

	return MergeLocalConfig(v, wd)
}

func GetBoolFlagOrDefault(fs FlagSet, flag string, d bool) bool {
	v, err := fs.GetBool(flag)
	if err != nil {
		return d
	}

	return v
}

func GetStringFlagOrDefault(fs FlagSet, flag, d string) string {
	s, err := fs.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}
