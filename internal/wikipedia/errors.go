package wikipedia

import (
	"errors"
	"fmt"
)

var (
	ErrNoHeading      = errors.New("no page heading found")
	ErrNoEpisodeTable = errors.New("no episode table found")
	ErrMultipleTables = errors.New("multiple episode tables found")
	ErrNoColumns      = errors.New("episode table has no heading cells")
)

// StructuralError reports a page whose layout cannot be extracted at all.
type StructuralError struct {
	Page string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %v", e.Page, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// RowShapeError reports an episode row whose cell count does not match the
// table's classified columns.
type RowShapeError struct {
	Page    string
	Row     int
	Cells   int
	Columns int
}

func (e *RowShapeError) Error() string {
	msg := fmt.Sprintf("row/column count mismatch: %d cells for %d columns", e.Cells, e.Columns)
	if e.Row > 0 {
		msg = fmt.Sprintf("episode row %d: %s", e.Row, msg)
	}
	if e.Page != "" {
		msg = e.Page + ": " + msg
	}
	return msg
}
