package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fire lookup.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnsupportedCountry
	KindNotFound
	KindTransport
	KindParse
	KindInvalidArgument
)

var kindNames = map[ErrorKind]string{
	KindUnknown:            "unknown",
	KindUnsupportedCountry: "unsupported_country",
	KindNotFound:           "not_found",
	KindTransport:          "transport_error",
	KindParse:              "parse_error",
	KindInvalidArgument:    "invalid_argument",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(k))
}

// Error is a classified lookup failure with an optional diagnostic detail.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrUnsupportedCountry = &Error{Kind: KindUnsupportedCountry}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrTransport          = &Error{Kind: KindTransport}
	ErrParse              = &Error{Kind: KindParse}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func NewTransportError(detail string, err error) error {
	return &Error{Kind: KindTransport, Detail: detail, Err: err}
}

func NewParseError(detail string, err error) error {
	return &Error{Kind: KindParse, Detail: detail, Err: err}
}

func NewNotFoundError(detail string) error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func NewInvalidArgumentError(detail string) error {
	return &Error{Kind: KindInvalidArgument, Detail: detail}
}

func NewUnsupportedCountryError(countryCode string) error {
	return &Error{Kind: KindUnsupportedCountry, Detail: fmt.Sprintf("country %q is not supported", countryCode)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
