package tempconv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Scale names a temperature scale.
type Scale string

const (
	Celsius    Scale = "C"
	Fahrenheit Scale = "F"
)

// FixedPoint is the value at which both scales read the same number.
const FixedPoint = -40.0

var (
	ErrInvalidInput = errors.New("invalid input: Input must be a number")
	ErrUnknownScale = errors.New("unknown temperature scale: must be C or F")
)

// Symbol returns the display form of the scale, e.g. "°C".
func (s Scale) Symbol() string {
	return "°" + string(s)
}

// Other returns the opposite scale.
func (s Scale) Other() Scale {
	if s == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// ParseScale accepts "c", "celsius", "f" or "fahrenheit" in any case.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScale, s)
	}
}

// CelsiusToFahrenheit converts value, which must be of a numeric kind, from °C to °F.
func CelsiusToFahrenheit(value any) (float64, error) {
	c, err := toNumber(value)
	if err != nil {
		return 0, err
	}
	return c*9/5 + 32, nil
}

// FahrenheitToCelsius converts value, which must be of a numeric kind, from °F to °C.
func FahrenheitToCelsius(value any) (float64, error) {
	f, err := toNumber(value)
	if err != nil {
		return 0, err
	}
	return (f - 32) * 5 / 9, nil
}

// Convert converts value between the given scales.
// Same-scale conversions return the validated value unchanged.
func Convert(value any, from, to Scale) (float64, error) {
	if !known(from) || !known(to) {
		return 0, fmt.Errorf("%w: %q -> %q", ErrUnknownScale, from, to)
	}
	switch {
	case from == to:
		return toNumber(value)
	case from == Celsius:
		return CelsiusToFahrenheit(value)
	default:
		return FahrenheitToCelsius(value)
	}
}

func known(s Scale) bool {
	return s == Celsius || s == Fahrenheit
}

// toNumber accepts integer and float kinds, including named types such as
// `type Celsius float64`, and rejects everything else. NaN and ±Inf are rejected.
func toNumber(value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w, got nil", ErrInvalidInput)
	}

	rv := reflect.ValueOf(value)
	var n float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		n = rv.Float()
	default:
		return 0, fmt.Errorf("%w, got %T", ErrInvalidInput, value)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w, got non-finite %v", ErrInvalidInput, n)
	}
	return n, nil
}
