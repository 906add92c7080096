package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tempconv"

	"github.com/google/uuid"
)

// brokenConverter gets the C->F offset wrong and accepts anything.
type brokenConverter struct{}

func (brokenConverter) CelsiusToFahrenheit(value any) (float64, error) {
	v, _ := value.(float64)
	return v*9/5 + 30, nil
}
func (brokenConverter) FahrenheitToCelsius(value any) (float64, error) {
	v, _ := value.(float64)
	return (v - 32) * 5 / 9, nil
}
func (brokenConverter) Convert(value any, from, to tempconv.Scale) (float64, error) {
	return 0, nil
}

// panickingConverter panics on every call.
type panickingConverter struct{ brokenConverter }

func (panickingConverter) CelsiusToFahrenheit(value any) (float64, error) {
	panic("sensor on fire")
}

func TestSelfTest_AllPassWithRealConverter(t *testing.T) {
	var out, errOut bytes.Buffer
	svc := NewService(Options{Out: &out, ErrOut: &errOut})

	s := svc.Run()
	if s.Failed != 0 {
		t.Fatalf("expected no failures, got %+v\nstderr: %s", s, errOut.String())
	}
	if s.Passed != 8+len(roundTripSamples) {
		t.Fatalf("unexpected pass count %d", s.Passed)
	}
	if s.ExitCode() != 0 {
		t.Fatalf("expected exit code 0, got %d", s.ExitCode())
	}
	if _, err := uuid.Parse(s.RunID); err != nil {
		t.Fatalf("RunID %q is not a UUID: %v", s.RunID, err)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected failure output: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "🎉 All tests passed!") {
		t.Fatalf("missing verdict: %q", out.String())
	}
}

func TestSelfTest_OrderMatchesSuite(t *testing.T) {
	svc := NewSelfTestService(NewConverterService(nil), Options{})

	s := svc.Run()
	want := []string{
		"Convert 0°C to Fahrenheit",
		"Convert 100°C to Fahrenheit",
		"Convert 212°F to Celsius",
		"Convert 32°F to Celsius",
		"Convert -40°C to Fahrenheit (edge case)",
		"Convert -40°F to Celsius (edge case)",
		"Error handling for invalid Celsius input",
		"Error handling for invalid Fahrenheit input",
	}
	for i, w := range want {
		if s.Results[i].Description != w {
			t.Fatalf("case %d = %q, want %q", i, s.Results[i].Description, w)
		}
	}
}

func TestSelfTest_FaultyConverterFails(t *testing.T) {
	var out, errOut bytes.Buffer
	svc := NewSelfTestService(brokenConverter{}, Options{Out: &out, ErrOut: &errOut})

	s := svc.Run()
	if s.ExitCode() == 0 {
		t.Fatalf("expected nonzero exit code, got summary %+v", s)
	}
	if s.Total() != 8+len(roundTripSamples) {
		t.Fatalf("a failure aborted the run: %+v", s)
	}
	// 0->32 and 100->212 are off by two; both invalid-input checks fail too.
	if !strings.Contains(errOut.String(), "❌ Convert 0°C to Fahrenheit") {
		t.Fatalf("missing failure line: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error handling for invalid Celsius input") {
		t.Fatalf("invalid-input check should fail for a permissive converter: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "❌ Some tests failed!") {
		t.Fatalf("missing failure verdict: %q", out.String())
	}
}

func TestSelfTest_PanicDoesNotAbortRun(t *testing.T) {
	var out, errOut bytes.Buffer
	svc := NewSelfTestService(panickingConverter{}, Options{Out: &out, ErrOut: &errOut})

	s := svc.Run()
	if s.Total() != 8+len(roundTripSamples) {
		t.Fatalf("expected every case to run, got %d", s.Total())
	}
	if !strings.Contains(errOut.String(), "panic: sensor on fire") {
		t.Fatalf("panic not reported: %q", errOut.String())
	}
	// F->C cases do not touch the panicking method.
	if s.Results[2].Passed != true {
		t.Fatalf("expected 212°F case to pass, got %+v", s.Results[2])
	}
}

func TestSelfTest_Tolerance(t *testing.T) {
	t.Parallel()

	// brokenConverter is two degrees off on C->F; a tolerance of 3 hides it.
	svc := NewSelfTestService(brokenConverter{}, Options{Tolerance: 3})
	if svc.tolerance != 3 {
		t.Fatalf("tolerance not applied: %v", svc.tolerance)
	}
	s := svc.Run()
	for _, r := range s.Results[:6] {
		if !r.Passed {
			t.Fatalf("expected %q to pass at tolerance 3: %s", r.Description, r.Err)
		}
	}

	if got := NewSelfTestService(brokenConverter{}, Options{Tolerance: -1}).tolerance; got != 0.01 {
		t.Fatalf("expected default tolerance, got %v", got)
	}
}

func TestSelfTest_ExpectPropagatesConverterError(t *testing.T) {
	t.Parallel()

	svc := NewSelfTestService(NewConverterService(nil), Options{})
	boom := errors.New("boom")
	err := svc.expect(func(any) (float64, error) { return 0, boom }, 1, 1, "msg")()
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
