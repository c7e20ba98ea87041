// Dict type for Typst.
// Translated from foundations/dict.rs

package foundations

import (
	"fmt"

	"github.com/cortado-lang/cortado/syntax"
)

// DictConstruct converts a value to a dictionary.
// Supports: Module.
//
// Note: This is only for conversion of dictionary-like values to a dictionary,
// not for creation of a dictionary from individual pairs. Use dict syntax `(key: value)` instead.
//
// This matches Rust's dict::construct function.
func DictConstruct(args *Args) (Value, error) {
	spanned, err := args.Expect("value")
	if err != nil {
		return nil, err
	}
	value := spanned.V

	if err := args.Finish(); err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case *Dict:
		return v, nil

	case ModuleValue:
		// Convert module scope to dictionary
		result := NewDict()
		if v.Module != nil && v.Module.Scope != nil {
			v.Module.Scope.Iter(func(name string, binding Binding) {
				result.Set(name, binding.Read())
			})
		}
		return result, nil

	default:
		return nil, &ConstructorError{
			Message: fmt.Sprintf("expected dictionary or module, found %s", value.Type().String()),
			Span:    spanned.Span,
		}
	}
}

// dictEntry is one key/value pair in insertion order.
type dictEntry struct {
	key   string
	value Value
}

// Dict represents a map from string keys to values.
//
// You can construct a dictionary by enclosing comma-separated key: value pairs
// in parentheses. The values do not have to be of the same type. Since empty
// parentheses already yield an empty array, you have to use the special (:)
// syntax to create an empty dictionary.
//
// A dictionary is conceptually similar to an array, but it is indexed by
// strings instead of integers. You can access and create dictionary entries
// with the .at() method. If you know the key statically, you can alternatively
// use field access notation (.key) to access the value.
//
// Entries are an ordered slice so iteration follows insertion order; a
// side index map keeps key lookup constant time.
type Dict struct {
	entries []dictEntry
	index   map[string]int
}

func (*Dict) Type() Type         { return TypeDict }
func (d *Dict) Display() Content { return Content{} }
func (d *Dict) Clone() Value {
	clone := NewDict()
	if d == nil {
		return clone
	}
	for _, e := range d.entries {
		clone.Set(e.key, e.value.Clone())
	}
	return clone
}
func (*Dict) isValue() {}

// NewDict creates a new empty dictionary.
func NewDict() *Dict {
	return &Dict{index: map[string]int{}}
}

// lookup returns the entry slot for key, or -1.
func (d *Dict) lookup(key string) int {
	if d == nil || d.index == nil {
		return -1
	}
	if i, ok := d.index[key]; ok {
		return i
	}
	return -1
}

// reindex rebuilds the key index after a removal shifted entries.
func (d *Dict) reindex() {
	d.index = make(map[string]int, len(d.entries))
	for i, e := range d.entries {
		d.index[e.key] = i
	}
}

// IsEmpty returns true if the dictionary is empty.
func (d *Dict) IsEmpty() bool {
	return d == nil || len(d.entries) == 0
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Get retrieves a value by key.
// Returns the value and true if found, nil and false otherwise.
func (d *Dict) Get(key string) (Value, bool) {
	i := d.lookup(key)
	if i < 0 {
		return nil, false
	}
	return d.entries[i].value, true
}

// AtMut returns a mutable pointer to the value at the given key.
// Returns an error if the key doesn't exist.
// Matches Rust's at_mut method.
func (d *Dict) AtMut(key string) (*Value, error) {
	i := d.lookup(key)
	if i < 0 {
		return nil, &OpError{Message: fmt.Sprintf("dictionary does not contain key %q; use insert to add or update values", key)}
	}
	return &d.entries[i].value, nil
}

// Set inserts or updates a key-value pair.
func (d *Dict) Set(key string, value Value) {
	if d == nil {
		return
	}
	if i := d.lookup(key); i >= 0 {
		d.entries[i].value = value
		return
	}
	if d.index == nil {
		d.index = map[string]int{}
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, dictEntry{key: key, value: value})
}

// Insert is an alias for Set, matching Rust's insert method.
func (d *Dict) Insert(key string, value Value) {
	d.Set(key, value)
}

// Take removes and returns the value for the given key.
// Returns an error if the key doesn't exist.
// Matches Rust's take method.
func (d *Dict) Take(key string) (Value, error) {
	i := d.lookup(key)
	if i < 0 {
		return nil, &OpError{Message: fmt.Sprintf("dictionary does not contain key %q", key)}
	}
	v := d.entries[i].value
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	d.reindex()
	return v, nil
}

// Remove removes and returns the value for the given key.
// If the key doesn't exist and a default is provided, returns the default.
// Matches Rust's remove method with optional default.
func (d *Dict) Remove(key string, def *syntax.Spanned[Value]) (Value, error) {
	v, err := d.Take(key)
	if err != nil && def != nil {
		return def.V, nil
	}
	return v, err
}

// Contains returns true if the dictionary contains the given key.
func (d *Dict) Contains(key string) bool {
	return d.lookup(key) >= 0
}

// Clear removes all entries from the dictionary.
func (d *Dict) Clear() {
	if d == nil {
		return
	}
	d.entries = nil
	d.index = map[string]int{}
}

// Keys returns all keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

// Values returns all values in insertion order.
func (d *Dict) Values() []Value {
	if d == nil {
		return nil
	}
	values := make([]Value, len(d.entries))
	for i, e := range d.entries {
		values[i] = e.value
	}
	return values
}

// Iter returns the keys and values as parallel slices in insertion
// order.
func (d *Dict) Iter() ([]string, []Value) {
	return d.Keys(), d.Values()
}
