package server

import "strings"

// Headers is a case-insensitive multimap of header names to values.
// Names are lowercased on Add. Iteration follows the order in which
// each name was first added, with all values of a name adjacent.
type Headers struct {
	names  []string
	values map[string][]string
}

func NewHeaders() *Headers {
	return &Headers{values: make(map[string][]string)}
}

// Add appends value to the list kept for name.
func (h *Headers) Add(name, value string) {
	name = strings.ToLower(name)
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = append(h.values[name], value)
}

// Get returns the last value added for name, or "" when absent. The
// last value wins, matching HTTP override semantics.
func (h *Headers) Get(name string) string {
	return h.GetDefault(name, "")
}

// GetDefault returns the last value added for name, or def when absent.
func (h *Headers) GetDefault(name, def string) string {
	vals := h.values[strings.ToLower(name)]
	if len(vals) == 0 {
		return def
	}
	return vals[len(vals)-1]
}

// GetAll returns every value added for name, oldest first.
func (h *Headers) GetAll(name string) []string {
	return h.values[strings.ToLower(name)]
}

// Len reports the number of distinct names.
func (h *Headers) Len() int {
	return len(h.names)
}

// each calls fn for every name/value pair in emission order.
func (h *Headers) each(fn func(name, value string)) {
	for _, name := range h.names {
		for _, value := range h.values[name] {
			fn(name, value)
		}
	}
}
