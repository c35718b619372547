package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty          = errors.New("layout has no rows")
	ErrRaggedRows     = errors.New("layout rows differ in length")
	ErrTileSize       = errors.New("tile size must be positive")
	ErrNoStart        = errors.New("layout has no start marker")
	ErrMultipleStarts = errors.New("layout has more than one start marker")
	ErrMultipleGoals  = errors.New("layout has more than one goal marker")

	ErrTileShape = errors.New("map tiles must be square")
	ErrLayerSize = errors.New("layout layer does not cover the map")
)

// ParseError locates a layout problem. It unwraps to one of the Err values.
type ParseError struct {
	Row, Col int
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d col %d: %v", e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
