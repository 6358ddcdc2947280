// Package clipboard stores cut/copied text, in the system clipboard when
// available and in an internal register otherwise.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/codepad/internal/logger"
)

// Provider is a system clipboard.
type Provider interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemProvider struct{}

func (systemProvider) ReadAll() (string, error) { return clipboard.ReadAll() }

func (systemProvider) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System returns the OS clipboard provider.
func System() Provider { return systemProvider{} }

// Manager owns the internal register and, optionally, a system provider.
type Manager struct {
	register []byte
	system   Provider
	warned   bool
}

// NewManager creates a manager. A nil provider keeps everything internal.
func NewManager(system Provider) *Manager {
	if system != nil && clipboard.Unsupported {
		if _, ok := system.(systemProvider); ok {
			logger.Warnf("System clipboard unsupported on this platform, using internal register")
			system = nil
		}
	}
	return &Manager{system: system}
}

// UsesSystem reports whether a system provider is configured.
func (m *Manager) UsesSystem() bool { return m.system != nil }

// Copy stores text. The internal register always receives a copy so a
// failing system clipboard does not lose it.
func (m *Manager) Copy(text []byte) error {
	m.register = append(m.register[:0:0], text...)
	if m.system == nil {
		return nil
	}
	if err := m.system.WriteAll(string(text)); err != nil {
		m.warnOnce(err)
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// Paste returns the current clipboard text: the system clipboard when it
// can be read and is non-empty, the internal register otherwise.
func (m *Manager) Paste() []byte {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return []byte(text)
		}
		if err != nil {
			m.warnOnce(err)
		}
	}
	return append([]byte(nil), m.register...)
}

func (m *Manager) warnOnce(err error) {
	if m.warned {
		logger.DebugTagf("clipboard", "System clipboard error: %v", err)
		return
	}
	m.warned = true
	logger.Warnf("System clipboard unavailable, falling back to internal register: %v", err)
}
