package model

import "fmt"

// FetchError is a network-level failure against a source or channel
// endpoint: connection error, timeout, or a non-2xx response.
type FetchError struct {
	Source     string
	StatusCode int // zero when the request never got a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError means a source responded but the document did not match the
// shape the adapter expects.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError is a fatal configuration problem, e.g. missing mail
// credentials. It aborts the run before any fetching starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// DispatchError is a channel send that failed after the payload was built.
type DispatchError struct {
	Channel string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s: %v", e.Channel, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
