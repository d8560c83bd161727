package comparison

import "errors"

var (
	ErrNegativeGross   = errors.New("gross value must not be negative")
	ErrRateOutOfRange  = errors.New("contractor rate must be between 0 and 100")
	// ErrGrossOutOfRange covers values above MaxGross and values carrying more
	// than MaxGrossScale fraction digits.
	ErrGrossOutOfRange = errors.New("gross value is out of range")
)
