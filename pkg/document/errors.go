package document

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingNode is returned when a required attribute or element is absent.
	ErrMissingNode = errors.New("missing node")
	// ErrInvalidValue is returned when node text cannot be converted to the
	// field's declared type.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMalformed is returned when the input is not a well-formed document of
	// the expected shape.
	ErrMalformed = errors.New("malformed document")
)

// MappingError describes why a document could not be decoded into a value.
type MappingError struct {
	// Element is the root element name of the schema being decoded.
	Element string
	// Path locates the failing node below the root, e.g. "person[1].role".
	// Empty when the root itself is at fault.
	Path string
	Err  error
}

func (e *MappingError) Error() string {
	if e.Element == "" {
		return e.Err.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Element, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Element, e.Path, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// fieldError is the error a field decoder reports before the schema attaches
// the root element name.
type fieldError struct {
	path string
	err  error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.path, e.err)
}

func missing(path string) error {
	return &fieldError{path: path, err: ErrMissingNode}
}

func invalid(path string, err error) error {
	return &fieldError{path: path, err: fmt.Errorf("%w: %w", ErrInvalidValue, err)}
}

// nest prefixes the path of an error produced while decoding a child element.
func nest(prefix string, err error) error {
	var me *MappingError
	if errors.As(err, &me) {
		path := prefix
		if me.Path != "" {
			path = prefix + "." + me.Path
		}
		return &fieldError{path: path, err: me.Err}
	}
	return &fieldError{path: prefix, err: err}
}
