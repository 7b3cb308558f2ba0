package paging

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells a source how a field value is stored.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// Field describes one sortable and filterable property of T.
//
// Column is the storage key (SQL column or document key) used by database
// backed sources; Text and Compare serve in-memory sources.
type Field[T any] struct {
	Name    string
	Column  string
	Kind    Kind
	Text    func(T) string
	Compare func(a, b T) int
}

// StringField registers a text property.
func StringField[T any](name, column string, get func(T) string) Field[T] {
	return Field[T]{
		Name:    name,
		Column:  column,
		Kind:    KindString,
		Text:    get,
		Compare: func(a, b T) int { return strings.Compare(get(a), get(b)) },
	}
}

// IntField registers an integer property. Prefix filters match its base 10 form.
func IntField[T any](name, column string, get func(T) int64) Field[T] {
	return Field[T]{
		Name:    name,
		Column:  column,
		Kind:    KindNumber,
		Text:    func(v T) string { return strconv.FormatInt(get(v), 10) },
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// FloatField registers a decimal property.
func FloatField[T any](name, column string, get func(T) float64) Field[T] {
	return Field[T]{
		Name:    name,
		Column:  column,
		Kind:    KindNumber,
		Text:    func(v T) string { return strconv.FormatFloat(get(v), 'f', -1, 64) },
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// Fields is the field descriptor map of one item type. It is built once at
// startup and is read-only afterwards.
type Fields[T any] struct {
	byName map[string]Field[T]
	names  []string
}

// NewFields panics when a name is empty or registered twice ignoring case.
func NewFields[T any](fields ...Field[T]) *Fields[T] {
	fs := &Fields[T]{byName: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if f.Name == "" || f.Column == "" || f.Text == nil || f.Compare == nil {
			panic(fmt.Sprintf("paging: incomplete field descriptor %q", f.Name))
		}
		key := strings.ToLower(f.Name)
		if _, dup := fs.byName[key]; dup {
			panic(fmt.Sprintf("paging: duplicate field %q", f.Name))
		}
		fs.byName[key] = f
		fs.names = append(fs.names, f.Name)
	}
	return fs
}

// Lookup resolves name case-insensitively.
func (fs *Fields[T]) Lookup(name string) (Field[T], error) {
	f, ok := fs.byName[strings.ToLower(name)]
	if !ok {
		return Field[T]{}, &InvalidFieldError{Field: name}
	}
	return f, nil
}

// Names returns the canonical names in registration order.
func (fs *Fields[T]) Names() []string {
	return append([]string(nil), fs.names...)
}
