package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded in order; earlier files win because godotenv
// never overrides a variable that is already set.
var DefaultEnvFiles = []string{"api.env", ".env"}

// LoadEnvFiles loads every env file that exists and returns the ones it read.
// A missing file is skipped, a malformed one is an error.
func LoadEnvFiles(files ...string) ([]string, error) {
	var loaded []string
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, err
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
