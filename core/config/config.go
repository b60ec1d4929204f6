package config

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
	HistoryName       = "history"
)

type Configuration struct {
	configFs afero.Fs
	// configurationDir is the directory on the OS filesystem backing configFs,
	// empty if the configuration isn't backed by the OS.
	configurationDir string

	// Prompt for the interactive shell, \w expands to the working directory.
	Prompt string `json:"prompt" validate:"required"`
	// StartDir is the initial working directory, empty uses the process's.
	StartDir     string `json:"start_dir"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`

	Viewer Viewer `json:"viewer"`
	AppLog AppLog `json:"app_log"`

	Commands []CommandSpec `json:"commands" validate:"unique=Name,dive"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Viewer controls how files are displayed.
type Viewer struct {
	LineNumbers bool `json:"line_numbers"`
	Header      bool `json:"header"`
	Grid        bool `json:"grid"`
	// MaxBytesPerSecond throttles output, 0 is unlimited.
	MaxBytesPerSecond int64 `json:"max_bytes_per_second" validate:"gte=0"`
}

// AppLog controls rotation of the event log.
type AppLog struct {
	// MaxSizeMB rotates the log once it reaches the size, 0 never rotates.
	MaxSizeMB  int `json:"max_size_mb" validate:"gte=0"`
	MaxBackups int `json:"max_backups" validate:"gte=0"`
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (io.WriteCloser, error) {
	if c.AppLog.MaxSizeMB > 0 && c.configurationDir != "" {
		return &lumberjack.Logger{
			Filename:   filepath.Join(c.configurationDir, AppLogName),
			MaxSize:    c.AppLog.MaxSizeMB,
			MaxBackups: c.AppLog.MaxBackups,
		}, nil
	}

	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// HistoryPath is where the interactive shell keeps its history, empty if
// history shouldn't be persisted.
func (c *Configuration) HistoryPath() string {
	if c.configurationDir == "" || c.HistoryLimit == 0 {
		return ""
	}
	return filepath.Join(c.configurationDir, HistoryName)
}

// Default returns the built in configuration backed by an in-memory
// filesystem.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewMemMapFs()
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
