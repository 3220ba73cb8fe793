package browse

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Location is the address bar: a path plus query string, written as a whole.
type Location interface {
	Path() string
	Query() url.Values
	// Push navigates to a new entry, Replace rewrites the current one.
	Push(path string, values url.Values)
	Replace(path string, values url.Values)
	// Back pops one entry and reports whether there was one to pop.
	Back() bool
	String() string
}

type entry struct {
	path     string
	rawQuery string
}

// MemoryLocation is an in-process Location with a history stack.
type MemoryLocation struct {
	mu      sync.RWMutex
	history []entry
	version uint64
}

var _ Location = (*MemoryLocation)(nil)

// NewMemoryLocation starts at path with values.
func NewMemoryLocation(path string, values url.Values) *MemoryLocation {
	return &MemoryLocation{history: []entry{newEntry(path, values)}}
}

// ParseLocation builds a MemoryLocation from a shareable URL such as
// "/?page=2&category=c1" or a full "http://host/?page=2".
func ParseLocation(raw string) (*MemoryLocation, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NewMemoryLocation(RouteList, nil), nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", raw, err)
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse location query %q: %w", u.RawQuery, err)
	}
	return NewMemoryLocation(u.Path, values), nil
}

func newEntry(path string, values url.Values) entry {
	if path == "" {
		path = RouteList
	}
	return entry{path: path, rawQuery: values.Encode()}
}

func (l *MemoryLocation) current() entry {
	return l.history[len(l.history)-1]
}

func (l *MemoryLocation) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current().path
}

// Query returns a fresh copy of the current query string.
func (l *MemoryLocation) Query() url.Values {
	l.mu.RLock()
	raw := l.current().rawQuery
	l.mu.RUnlock()

	values, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return values
}

func (l *MemoryLocation) Push(path string, values url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = append(l.history, newEntry(path, values))
	l.version++
}

func (l *MemoryLocation) Replace(path string, values url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history[len(l.history)-1] = newEntry(path, values)
	l.version++
}

func (l *MemoryLocation) Back() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.history) < 2 {
		return false
	}
	l.history = l.history[:len(l.history)-1]
	l.version++
	return true
}

// Version increases on every write; tests use it to count URL writes.
func (l *MemoryLocation) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Depth is the number of history entries.
func (l *MemoryLocation) Depth() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.history)
}

func (l *MemoryLocation) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cur := l.current()
	if cur.rawQuery == "" {
		return cur.path
	}
	return cur.path + "?" + cur.rawQuery
}
