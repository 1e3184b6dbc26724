package environment

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotenv = ".env"

// LoadDotenv copies the variables of the given files into the process
// environment without overriding variables that are already set. With no
// paths it loads ".env" from the working directory and ignores its absence.
// It must run before the registries that rely on it are populated.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load(defaultDotenv)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(paths...)
}

// ReadDotenv parses the given files into a MapSource, leaving the process
// environment untouched. Later files win on duplicate keys.
func ReadDotenv(paths ...string) (MapSource, error) {
	if len(paths) == 0 {
		paths = []string{defaultDotenv}
	}
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, err
	}
	return MapSource(vars), nil
}
