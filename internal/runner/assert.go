package runner

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultTolerance is the absolute bound used by AssertEqual.
const DefaultTolerance = 0.01

var errExpectedFailure = errors.New("expected function to return an error")

// AssertEqual fails when actual differs from expected by more than DefaultTolerance.
func AssertEqual(actual, expected float64, message string) error {
	return AssertEqualWithin(actual, expected, DefaultTolerance, message)
}

// AssertEqualWithin fails when |actual-expected| > tolerance. NaN on either
// side always fails.
func AssertEqualWithin(actual, expected, tolerance float64, message string) error {
	if !(math.Abs(actual-expected) <= tolerance) {
		return fmt.Errorf("%s. Expected %v, but got %v", message, expected, actual)
	}
	return nil
}

// AssertFails requires fn to return an error whose message contains substr.
func AssertFails(fn func() error, substr string) error {
	err := invoke(fn)
	if err == nil {
		return fmt.Errorf("%w containing %q", errExpectedFailure, substr)
	}
	if !strings.Contains(err.Error(), substr) {
		return fmt.Errorf("expected error message to include %q, but got %q", substr, err.Error())
	}
	return nil
}
