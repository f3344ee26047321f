package iotable

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

func InputNotFoundError(path string) error {
	msg := "Input table <em>%s</em> not found"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.InputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input table not found: %s", path),
	}
}

func InputReadError(path string, err error) error {
	msg := "Cannot read input table <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.InputReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

func MissingHeadersError(path string, err error) error {
	msg := "Input table <em>%s</em> has no header row"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.MissingHeadersError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing headers in %s: %w", path, err),
	}
}

// MissingColumnsError is returned when food_sci or food_com columns
// are absent.
func MissingColumnsError(path string, err error) error {
	msg := "Input table <em>%s</em> lacks required columns <warn>%s</warn>"
	vars := []any{path, "food_sci, food_com"}
	return &gn.Error{
		Code: errcode.MissingColumnsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad columns in %s: %w", path, err),
	}
}

func OutputWriteError(path string, err error) error {
	msg := "Cannot write results to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
