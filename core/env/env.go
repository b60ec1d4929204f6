// Package env holds the process-wide shell state commands may read: the
// working directory and environment variables.
package env

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"
)

// Env is shared between every invocation of a shell. Accessors copy values
// out under the lock and release it before returning, callers never hold it.
type Env struct {
	mu   sync.Mutex
	cwd  string
	vars map[string]string
}

// New creates an environment rooted at cwd.
func New(cwd string) *Env {
	e := &Env{}
	e.setCwd(cleanDir("/", cwd))
	return e
}

// NewFromEnvList creates an environment from KEY=VALUE pairs, using PWD as the
// working directory if present.
func NewFromEnvList(cwd string, environ []string) *Env {
	out := New(cwd)

	for _, entry := range environ {
		split := strings.SplitN(entry, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		out.Setenv(key, value)
	}

	if pwd := out.Getenv(EnvPWD); pwd != "" {
		out.setCwd(cleanDir("/", pwd))
	}

	return out
}

// Cwd returns a copy of the current working directory.
func (e *Env) Cwd() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cwd
}

// Resolve makes p absolute relative to the working directory.
func (e *Env) Resolve(p string) string {
	return cleanDir(e.Cwd(), p)
}

// Chdir changes the working directory if dir exists on fs.
func (e *Env) Chdir(fs afero.Fs, dir string) error {
	target := e.Resolve(dir)

	isDir, err := afero.IsDir(fs, target)
	switch {
	case err != nil:
		return err
	case !isDir:
		return fmt.Errorf("%s: not a directory", dir)
	}

	e.setCwd(target)
	return nil
}

func (e *Env) setCwd(dir string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cwd = dir
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[EnvPWD] = dir
}

// Setenv sets an environment variable.
func (e *Env) Setenv(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[key] = value
}

// LookupEnv gets an environment variable and whether it was set.
func (e *Env) LookupEnv(key string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	val, ok := e.vars[key]
	return val, ok
}

// Getenv gets an environment variable or the empty string.
func (e *Env) Getenv(key string) string {
	val, _ := e.LookupEnv(key)
	return val
}

// ExpandEnv replaces $VAR and ${VAR} references in s.
func (e *Env) ExpandEnv(s string) string {
	return os.Expand(s, e.Getenv)
}

// Environ lists the environment as sorted KEY=VALUE pairs.
func (e *Env) Environ() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []string
	for k, v := range e.vars {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}

func cleanDir(base, p string) string {
	if !path.IsAbs(p) {
		p = path.Join(base, p)
	}
	return path.Clean(p)
}
