package configfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound is returned when the rules file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Issue is one problem found in a rules file, located by field path.
type Issue struct {
	Field   string
	Message string
}

// SchemaError reports every structural problem in a rules file.
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid rules file:")
	for _, is := range e.Issues {
		fmt.Fprintf(&sb, "\n  %s: %s", is.Field, is.Message)
	}
	return sb.String()
}

// LoadError wraps a failure to read or decode the rules file at Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
