package document

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Kind identifies how a field is laid out in the element tree.
type Kind int

const (
	// KindAttr is an attribute on the schema's root element.
	KindAttr Kind = iota
	// KindText is a single text-bearing child element.
	KindText
	// KindTextList is a sequence of text-bearing child elements.
	KindTextList
	// KindElements is a sequence of child elements with their own schema.
	KindElements
)

func (k Kind) String() string {
	switch k {
	case KindAttr:
		return "attr"
	case KindText:
		return "text"
	case KindTextList:
		return "text-list"
	case KindElements:
		return "elements"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field maps one field of T onto a node. Build fields with Attr, EnumAttr,
// Text, TextOrEmpty, OptionalText, TextList and Elements.
type Field[T any] struct {
	name   string
	kind   Kind
	encode func(v *T, el *etree.Element)
	decode func(v *T, el *etree.Element) error
}

// Name returns the attribute or element name the field maps to.
func (f Field[T]) Name() string { return f.name }

// Kind returns the node kind of the field.
func (f Field[T]) Kind() Kind { return f.kind }

// Attr maps a required string field to an attribute.
func Attr[T any](name string, field func(*T) *string) Field[T] {
	return Field[T]{
		name: name,
		kind: KindAttr,
		encode: func(v *T, el *etree.Element) {
			el.CreateAttr(name, *field(v))
		},
		decode: func(v *T, el *etree.Element) error {
			attr := el.SelectAttr(name)
			if attr == nil {
				return missing(name)
			}
			*field(v) = attr.Value
			return nil
		},
	}
}

// EnumAttr maps an enumerated string field to an attribute. Values are
// rendered lowercase and converted back with parse. When def is non-empty a
// missing attribute decodes to def, otherwise the attribute is required.
func EnumAttr[T any, E ~string](name string, field func(*T) *E, parse func(string) (E, error), def E) Field[T] {
	return Field[T]{
		name: name,
		kind: KindAttr,
		encode: func(v *T, el *etree.Element) {
			el.CreateAttr(name, strings.ToLower(string(*field(v))))
		},
		decode: func(v *T, el *etree.Element) error {
			attr := el.SelectAttr(name)
			if attr == nil {
				if def == "" {
					return missing(name)
				}
				*field(v) = def
				return nil
			}
			val, err := parse(attr.Value)
			if err != nil {
				return invalid(name, err)
			}
			*field(v) = val
			return nil
		},
	}
}

// Text maps a string field to a child element that is always emitted and
// must be present when decoding.
func Text[T any](name string, field func(*T) *string) Field[T] {
	return text(name, field, true)
}

// TextOrEmpty maps a string field to a child element that is always
// emitted. A missing element decodes to the empty string.
func TextOrEmpty[T any](name string, field func(*T) *string) Field[T] {
	return text(name, field, false)
}

func text[T any](name string, field func(*T) *string, required bool) Field[T] {
	return Field[T]{
		name: name,
		kind: KindText,
		encode: func(v *T, el *etree.Element) {
			el.CreateElement(name).SetText(*field(v))
		},
		decode: func(v *T, el *etree.Element) error {
			child := el.SelectElement(name)
			if child == nil {
				if required {
					return missing(name)
				}
				*field(v) = ""
				return nil
			}
			*field(v) = child.Text()
			return nil
		},
	}
}

// OptionalText maps a string field to a child element that is emitted only
// when the value is non-empty. A missing element decodes to the empty string.
func OptionalText[T any](name string, field func(*T) *string) Field[T] {
	return Field[T]{
		name: name,
		kind: KindText,
		encode: func(v *T, el *etree.Element) {
			if s := *field(v); s != "" {
				el.CreateElement(name).SetText(s)
			}
		},
		decode: func(v *T, el *etree.Element) error {
			if child := el.SelectElement(name); child != nil {
				*field(v) = child.Text()
			} else {
				*field(v) = ""
			}
			return nil
		},
	}
}

// TextList maps a string slice to repeated child elements, one per item.
// A nil or empty slice produces no elements and decodes back to nil.
func TextList[T any](name string, field func(*T) *[]string) Field[T] {
	return Field[T]{
		name: name,
		kind: KindTextList,
		encode: func(v *T, el *etree.Element) {
			for _, s := range *field(v) {
				el.CreateElement(name).SetText(s)
			}
		},
		decode: func(v *T, el *etree.Element) error {
			var out []string
			for _, child := range el.SelectElements(name) {
				out = append(out, child.Text())
			}
			*field(v) = out
			return nil
		},
	}
}

// Elements maps a slice of C to repeated child elements encoded by schema.
// The element name is the child schema's root element name.
func Elements[T, C any](schema *Schema[C], field func(*T) *[]C) Field[T] {
	name := schema.Element()
	return Field[T]{
		name: name,
		kind: KindElements,
		encode: func(v *T, el *etree.Element) {
			for _, c := range *field(v) {
				el.AddChild(schema.Encode(c))
			}
		},
		decode: func(v *T, el *etree.Element) error {
			var out []C
			for i, child := range el.SelectElements(name) {
				c, err := schema.Decode(child)
				if err != nil {
					return nest(fmt.Sprintf("%s[%d]", name, i), err)
				}
				out = append(out, c)
			}
			*field(v) = out
			return nil
		},
	}
}
