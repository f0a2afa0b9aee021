package document

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Schema declares how values of T map onto an element tree rooted at a fixed
// element name. A Schema is immutable after NewSchema and safe for
// concurrent use.
type Schema[T any] struct {
	element string
	fields  []Field[T]
}

// NewSchema returns a schema for T rooted at element. Fields are encoded in
// the given order.
func NewSchema[T any](element string, fields ...Field[T]) *Schema[T] {
	return &Schema[T]{
		element: element,
		fields:  fields,
	}
}

// Element returns the root element name.
func (s *Schema[T]) Element() string {
	return s.element
}

// Fields returns the schema's field descriptors in declaration order.
func (s *Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], len(s.fields))
	copy(out, s.fields)
	return out
}

// Encode converts v into a new element tree. It never fails.
func (s *Schema[T]) Encode(v T) *etree.Element {
	el := etree.NewElement(s.element)
	for _, f := range s.fields {
		f.encode(&v, el)
	}
	return el
}

// Decode converts el back into a value of T. Errors are *MappingError.
func (s *Schema[T]) Decode(el *etree.Element) (T, error) {
	var v T
	if el == nil {
		return v, &MappingError{Element: s.element, Err: ErrMissingNode}
	}
	if el.Tag != s.element {
		return v, &MappingError{
			Element: s.element,
			Err:     fmt.Errorf("%w: unexpected root element %q", ErrMalformed, el.Tag),
		}
	}

	for _, f := range s.fields {
		if err := f.decode(&v, el); err != nil {
			var fe *fieldError
			if errors.As(err, &fe) {
				return v, &MappingError{Element: s.element, Path: fe.path, Err: fe.err}
			}
			return v, &MappingError{Element: s.element, Path: f.name, Err: err}
		}
	}
	return v, nil
}

// Marshal encodes v and writes it as XML.
func (s *Schema[T]) Marshal(v T) ([]byte, error) {
	return Marshal(s.Encode(v))
}

// Unmarshal parses data and decodes the root element.
func (s *Schema[T]) Unmarshal(data []byte) (T, error) {
	el, err := Unmarshal(data)
	if err != nil {
		var v T
		var me *MappingError
		if errors.As(err, &me) {
			me.Element = s.element
		}
		return v, err
	}
	return s.Decode(el)
}
