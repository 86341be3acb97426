package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput means the roll cannot yield a single full-height strip,
	// so the roll count is undefined.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidDimension means a dimension is outside the caller contract
	// (non-positive where a positive value is required).
	ErrInvalidDimension = errors.New("invalid dimension")
)

// DegenerateInputError carries the strip and roll lengths that made the
// strips-per-roll count zero.
type DegenerateInputError struct {
	StripHeightM float64
	LengthM      float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: a %.2f m roll cannot yield one %.2f m strip", e.LengthM, e.StripHeightM)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}

// InvalidDimensionError names the offending field and its value.
type InvalidDimensionError struct {
	Field string
	Value float64
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: %s must be positive, got %g", e.Field, e.Value)
}

func (e *InvalidDimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// Validate checks the inputs against the caller contract and reports every
// problem at once. The calculator does not call it; it is for input forms
// and importers that want to reject bad values before calculating.
func Validate(roll RollSpec, room RoomSpec, windows, doors []Opening) error {
	var errs []error
	check := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, &InvalidDimensionError{Field: field, Value: v})
		}
	}

	check("roll width", roll.WidthCm)
	check("roll length", roll.LengthM)
	if roll.PatternRepeatCm < 0 {
		errs = append(errs, &InvalidDimensionError{Field: "pattern repeat", Value: roll.PatternRepeatCm})
	}
	check("room perimeter", room.PerimeterM)
	check("room height", room.HeightM)

	for _, w := range windows {
		check(fmt.Sprintf("window %d width", w.ID), w.WidthM)
		check(fmt.Sprintf("window %d height", w.ID), w.HeightM)
	}
	for _, d := range doors {
		check(fmt.Sprintf("door %d width", d.ID), d.WidthM)
		check(fmt.Sprintf("door %d height", d.ID), d.HeightM)
	}

	return errors.Join(errs...)
}
