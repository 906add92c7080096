package service

import (
	"io"

	"tempconv"
	"tempconv/internal/logger"
	"tempconv/internal/models"
)

// Converter performs temperature conversions.
type Converter interface {
	CelsiusToFahrenheit(value any) (float64, error)
	FahrenheitToCelsius(value any) (float64, error)
	Convert(value any, from, to tempconv.Scale) (float64, error)
}

// SelfTest runs the built-in conversion checks and reports the outcome.
type SelfTest interface {
	Run() models.Summary
}

// Service aggregates all sub-services.
type Service struct {
	Converter
	SelfTest
}

// Options configures NewService.
type Options struct {
	Out       io.Writer // pass lines and the summary block
	ErrOut    io.Writer // failure lines
	Tolerance float64
	Log       *logger.Logger
}

// NewService wires the converter into the self-test.
func NewService(opts Options) *Service {
	conv := NewConverterService(opts.Log)
	return &Service{
		Converter: conv,
		SelfTest:  NewSelfTestService(conv, opts),
	}
}
