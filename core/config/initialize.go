package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes a default configuration into dir, leaving any existing
// files alone, and loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	if err := initializeFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger); err != nil {
		return nil, err
	}

	logger.Printf("Configuration initialized in %s", dir)
	return Load(dir)
}

func initializeFs(configFs afero.Fs, logger *log.Logger) error {
	_, err := configFs.Stat(ConfigurationName)
	switch {
	case err == nil:
		logger.Printf("%s already exists, skipping", ConfigurationName)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	logger.Printf("Writing %s", filepath.Join(".", ConfigurationName))
	return afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600)
}
