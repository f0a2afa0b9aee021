package document

import (
	"fmt"
	"unicode/utf8"

	"github.com/beevik/etree"
)

// Marshal writes el as XML without a declaration. Empty elements are written
// with explicit end tags (<description></description>), which is what the
// build service emits itself. Carriage returns in text, and tabs and line
// breaks in attribute values, are written as character references so that
// parsing the output yields the same strings. el is copied, never
// re-parented.
func Marshal(el *etree.Element) ([]byte, error) {
	return newDocument(el).WriteToBytes()
}

// MarshalIndent is like Marshal but puts each element on its own line,
// indented by spaces per level.
func MarshalIndent(el *etree.Element, spaces int) ([]byte, error) {
	doc := newDocument(el)
	doc.Indent(spaces)
	return doc.WriteToBytes()
}

func newDocument(el *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.SetRoot(el.Copy())
	return doc
}

// CheckText reports an error if s cannot be carried by an XML 1.0 document
// unchanged: invalid UTF-8 or a character outside the XML Char production,
// such as most C0 control characters.
func CheckText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidValue)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U is not allowed in XML", ErrInvalidValue, r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// Unmarshal parses data and returns its root element. Malformed input
// yields a *MappingError wrapping ErrMalformed.
func Unmarshal(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &MappingError{Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	root := doc.Root()
	if root == nil {
		return nil, &MappingError{Err: fmt.Errorf("%w: no root element", ErrMalformed)}
	}
	return root, nil
}
