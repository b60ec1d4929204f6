package config

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(filepath.Join(tempDir, ConfigurationName))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		assert.IsType(t, &lumberjack.Logger{}, fd)
		_, err = fd.Write([]byte("{}\n"))
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("ReadAppLog", func(t *testing.T) {
		fd, err := cfg.ReadAppLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("HistoryPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(tempDir, HistoryName), cfg.HistoryPath())
	})
}

func TestInitialize_keepsExisting(t *testing.T) {
	tempDir := t.TempDir()
	custom := []byte("prompt: '$ '\n")
	if err := os.WriteFile(filepath.Join(tempDir, ConfigurationName), custom, 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cfg, err := Initialize(tempDir, log.New(&out, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Contains(t, out.String(), "config.yaml already exists, skipping")
}
