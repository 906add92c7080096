package service

import (
	"fmt"
	"io"

	"tempconv/internal/logger"
	"tempconv/internal/models"
	"tempconv/internal/runner"

	"github.com/google/uuid"
)

const (
	suiteTitle   = "Temperature Converter Tests"
	invalidInput = "invalid"
	wantInvalid  = "Input must be a number"
)

// roundTripSamples are Celsius values checked with F->C(C->F(x)) == x.
var roundTripSamples = []float64{-273.15, 37, 1000}

// SelfTestService runs the fixed conversion suite against a Converter.
type SelfTestService struct {
	conv      Converter
	out       io.Writer
	errOut    io.Writer
	tolerance float64
	log       *logger.Logger
}

// NewSelfTestService returns a suite bound to conv.
// A non-positive tolerance falls back to runner.DefaultTolerance.
func NewSelfTestService(conv Converter, opts Options) *SelfTestService {
	tol := opts.Tolerance
	if !(tol > 0) {
		tol = runner.DefaultTolerance
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	out, errOut := opts.Out, opts.ErrOut
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = out
	}
	return &SelfTestService{conv: conv, out: out, errOut: errOut, tolerance: tol, log: log}
}

type selfTestCase struct {
	description string
	fn          func() error
}

// Run executes every case in order and prints the report.
func (s *SelfTestService) Run() models.Summary {
	runID := uuid.NewString()
	s.log.Infow("starting self-test", "run_id", runID, "tolerance", s.tolerance)

	r := runner.New(s.out, s.errOut, s.log).WithRunID(runID)
	r.Header(suiteTitle)
	for _, c := range s.cases() {
		r.Test(c.description, c.fn)
	}
	return r.Report()
}

func (s *SelfTestService) cases() []selfTestCase {
	cases := []selfTestCase{
		{"Convert 0°C to Fahrenheit", s.expect(s.conv.CelsiusToFahrenheit, 0, 32, "0°C should equal 32°F")},
		{"Convert 100°C to Fahrenheit", s.expect(s.conv.CelsiusToFahrenheit, 100, 212, "100°C should equal 212°F")},
		{"Convert 212°F to Celsius", s.expect(s.conv.FahrenheitToCelsius, 212, 100, "212°F should equal 100°C")},
		{"Convert 32°F to Celsius", s.expect(s.conv.FahrenheitToCelsius, 32, 0, "32°F should equal 0°C")},
		{"Convert -40°C to Fahrenheit (edge case)", s.expect(s.conv.CelsiusToFahrenheit, -40, -40, "-40°C should equal -40°F")},
		{"Convert -40°F to Celsius (edge case)", s.expect(s.conv.FahrenheitToCelsius, -40, -40, "-40°F should equal -40°C")},
		{"Error handling for invalid Celsius input", s.expectInvalid(s.conv.CelsiusToFahrenheit)},
		{"Error handling for invalid Fahrenheit input", s.expectInvalid(s.conv.FahrenheitToCelsius)},
	}
	for _, x := range roundTripSamples {
		cases = append(cases, selfTestCase{
			description: fmt.Sprintf("Round trip %g°C through Fahrenheit", x),
			fn:          s.roundTrip(x),
		})
	}
	return cases
}

func (s *SelfTestService) expect(conv func(any) (float64, error), in, want float64, msg string) func() error {
	return func() error {
		got, err := conv(in)
		if err != nil {
			return err
		}
		return runner.AssertEqualWithin(got, want, s.tolerance, msg)
	}
}

func (s *SelfTestService) expectInvalid(conv func(any) (float64, error)) func() error {
	return func() error {
		return runner.AssertFails(func() error {
			_, err := conv(invalidInput)
			return err
		}, wantInvalid)
	}
}

func (s *SelfTestService) roundTrip(x float64) func() error {
	return func() error {
		f, err := s.conv.CelsiusToFahrenheit(x)
		if err != nil {
			return err
		}
		c, err := s.conv.FahrenheitToCelsius(f)
		if err != nil {
			return err
		}
		return runner.AssertEqualWithin(c, x, s.tolerance, fmt.Sprintf("%g°C should survive a round trip", x))
	}
}
