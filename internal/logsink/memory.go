package logsink

import (
	"strings"
	"sync"
)

// Memory records lines in memory. It is meant for tests and previews.
type Memory struct {
	mu     sync.Mutex
	lines  []string
	errors []string
}

// Write records lines.
func (m *Memory) Write(lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(lines) == 0 {
		m.lines = append(m.lines, "")
		return
	}
	m.lines = append(m.lines, lines...)
}

// WriteError records lines as errors.
func (m *Memory) WriteError(lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, lines...)
	m.errors = append(m.errors, lines...)
}

// WriteDivider records the divider.
func (m *Memory) WriteDivider() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, Divider)
}

// Lines returns a copy of every recorded line.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// Errors returns a copy of the lines recorded through WriteError.
func (m *Memory) Errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errors...)
}

// Contains reports whether any recorded line contains substr.
func (m *Memory) Contains(substr string) bool {
	for _, line := range m.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
