package ioncbi

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// RequestError creates an error for a request that did not get
// any response (network failure, timeout).
func RequestError(endpoint, term string, err error) error {
	msg := "<warn>%s</warn> failed for <em>%s</em>"
	vars := []any{endpoint, term}

	return &gn.Error{
		Code: errcode.NCBIRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s request failed for '%s': %w", endpoint, term, err),
	}
}

// StatusError creates an error for a response with non-success
// HTTP status.
func StatusError(endpoint, term string, status int) error {
	msg := "<warn>%s</warn> returned HTTP %d for <em>%s</em>"
	vars := []any{endpoint, status, term}

	return &gn.Error{
		Code: errcode.NCBIStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s returned status %d for '%s'",
			endpoint, status, term),
	}
}

// ParseError creates an error for a response that is not a valid
// E-utilities XML document.
func ParseError(endpoint, term string, err error) error {
	msg := "Cannot parse <warn>%s</warn> response for <em>%s</em>"
	vars := []any{endpoint, term}

	return &gn.Error{
		Code: errcode.NCBIParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s response for '%s': %w", endpoint, term, err),
	}
}
