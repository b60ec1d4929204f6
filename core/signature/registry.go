package signature

import (
	"fmt"
	"sync"

	"github.com/josephlewis42/structsh/core/diag"
	"github.com/tidwall/btree"
)

// Registry looks up command signatures by name.
type Registry interface {
	// Get returns the signature for name or a diag.UnknownCommand error.
	Get(name string) (*Signature, error)
}

// Table is a Registry that's safe to read from many invocations at once.
type Table struct {
	mu   sync.RWMutex
	sigs btree.Map[string, *Signature]
}

var _ Registry = (*Table)(nil)

// NewTable creates an empty registry.
func NewTable() *Table {
	return &Table{}
}

// Register validates and adds a signature. Names must be unique.
func (t *Table) Register(sig *Signature) error {
	if sig == nil {
		return fmt.Errorf("nil signature")
	}
	if err := sig.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sigs.Get(sig.Name); ok {
		return fmt.Errorf("signature %q already registered", sig.Name)
	}
	t.sigs.Set(sig.Name, sig)
	return nil
}

// Get implements Registry.Get.
func (t *Table) Get(name string) (*Signature, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sig, ok := t.sigs.Get(name)
	if !ok {
		return nil, diag.New(diag.UnknownCommand, "%s: command not found", name)
	}
	return sig, nil
}

// Names lists the registered commands in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []string
	t.sigs.Scan(func(name string, _ *Signature) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Len returns the number of registered signatures.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sigs.Len()
}
