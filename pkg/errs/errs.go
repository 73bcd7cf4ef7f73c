// Package errs holds the failure kinds surfaced by the stats core. Callers match
// them with errors.Is and show Error() to users.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("country not found")
	ErrAmbiguous      = errors.New("ambiguous country")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrUpstreamFetch  = errors.New("upstream fetch failed")
	ErrUpstreamParse  = errors.New("upstream payload could not be parsed")
	ErrEmptyTimeline  = errors.New("timeline has no data points")
	ErrBadArgument    = errors.New("bad command argument")
)

// Error is a failure of a known kind with a message fit for display.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// CountryError is returned when a location lookup does not match exactly one record.
type CountryError struct {
	Name    string
	Matches int
}

func (e *CountryError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no data available for %q", e.Name)
	}
	return fmt.Sprintf("%q matches %d locations", e.Name, e.Matches)
}

func (e *CountryError) Unwrap() error {
	if e.Matches == 0 {
		return ErrNotFound
	}
	return ErrAmbiguous
}

func Fetch(msg string, err error) error {
	return &Error{Kind: ErrUpstreamFetch, Msg: msg, Err: err}
}

func Parse(msg string, err error) error {
	return &Error{Kind: ErrUpstreamParse, Msg: msg, Err: err}
}

func InvalidSortKey(key string) error {
	return &Error{Kind: ErrInvalidSortKey, Msg: fmt.Sprintf("%q is not a valid sort key", key)}
}

func EmptyTimeline(msg string) error {
	return &Error{Kind: ErrEmptyTimeline, Msg: msg}
}

func BadArgument(msg string) error {
	return &Error{Kind: ErrBadArgument, Msg: msg}
}
