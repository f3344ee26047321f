package ioenrich

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// CancelledError is returned when the run is interrupted before all rows
// are processed. Nothing is written in this case.
func CancelledError(row, total int, err error) error {
	msg := "Enrichment <warn>cancelled</warn> at row %d of %d, output is not written"
	vars := []any{row, total}
	return &gn.Error{
		Code: errcode.EnrichCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cancelled at row %d/%d: %w", row, total, err),
	}
}
