package core

import (
	"bytes"
	"reflect"

	"github.com/bytedance/sonic"
)

// Params is an ordered set of named operation parameters. Keys are encoded in the
// order they were first set. The zero value is ready to use.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set adds a required parameter. It is always encoded, even when zero. Setting an
// existing key replaces its value and keeps its position.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// SetOptional adds a parameter only when it carries a value. Nil pointers, empty
// strings, empty slices and maps, and zero numbers and bools are skipped so that
// Betfair applies its default. Use a pointer when the zero value differs from the default.
func (p *Params) SetOptional(key string, value any) *Params {
	if isAbsent(value) {
		return p
	}
	return p.Set(key, value)
}

// Get returns the value stored for key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter names in encoding order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON encodes the parameters as a JSON object in insertion order.
// A nil or empty Params encodes as {}.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if p != nil {
		for i, key := range p.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := sonic.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := sonic.Marshal(p.values[key])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
