package dotenv

import (
	"strings"
)

// OverrideSet is a KEY=VALUE mapping that remembers the order keys were first set in.
type OverrideSet struct {
	keys   []string
	values map[string]string
}

// NewOverrideSet returns an empty set.
func NewOverrideSet() *OverrideSet {
	return &OverrideSet{values: make(map[string]string)}
}

// Set stores value for key. A key that is already present keeps its position.
func (o *OverrideSet) Set(key, value string) {
	if o.values == nil {
		o.values = make(map[string]string)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value for key and whether it is present.
func (o *OverrideSet) Get(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *OverrideSet) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *OverrideSet) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// ParseOverrides parses whitespace-separated KEY=VALUE tokens, e.g.
// "GIT_BRANCH=master DB_HOST=localhost". The value may itself contain "=".
// When a key is repeated the last value wins.
func ParseOverrides(args string) (*OverrideSet, error) {
	set := NewOverrideSet()
	for _, token := range strings.Fields(args) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key == "" {
			return nil, &TokenError{Token: token}
		}
		set.Set(key, value)
	}
	return set, nil
}

// ParseOverrideArgs joins command line arguments with spaces and parses them with ParseOverrides.
func ParseOverrideArgs(args []string) (*OverrideSet, error) {
	return ParseOverrides(strings.Join(args, " "))
}
