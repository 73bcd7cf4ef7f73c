// Package help keeps the help text shown for each bot command.
package help

import (
	"sort"
	"sync"
)

const NotFound = "That command does not exist"

type Registry struct {
	mu      sync.RWMutex
	text    map[string]string
	aliases map[string][]string
	owner   map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.Clear()
	return r
}

// Add registers text for command. Aliases resolve to the same text.
func (r *Registry) Add(command string, aliases []string, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text[command] = text
	r.aliases[command] = append([]string(nil), aliases...)
	for _, a := range aliases {
		r.owner[a] = command
	}
}

// Get looks command up by name, then by alias.
func (r *Registry) Get(command string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if text := r.text[command]; text != "" {
		return text
	}
	if text := r.text[r.owner[command]]; text != "" {
		return text
	}
	return NotFound
}

func (r *Registry) Aliases(command string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.aliases[command]...)
}

// Commands lists the registered commands in name order.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.text))
	for name := range r.text {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = map[string]string{}
	r.aliases = map[string][]string{}
	r.owner = map[string]string{}
}
