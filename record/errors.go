// SPDX-License-Identifier: MIT

package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceFormat indicates that the upstream table does not carry the
// required columns. The batch pipeline does not run when it is returned.
var ErrSourceFormat = errors.New("record: source table does not match the expected schema")

// SourceFormatError lists every required column absent from a table.
// It matches ErrSourceFormat under errors.Is.
type SourceFormatError struct {
	Missing []string
}

func (e *SourceFormatError) Error() string {
	return fmt.Sprintf("%v: missing columns [%s]", ErrSourceFormat, strings.Join(e.Missing, ", "))
}

// Unwrap exposes ErrSourceFormat.
func (e *SourceFormatError) Unwrap() error { return ErrSourceFormat }
