package service

import (
	"tempconv"
	"tempconv/internal/logger"
)

// ConverterService exposes the tempconv functions and logs rejected input.
type ConverterService struct {
	log *logger.Logger
}

func NewConverterService(log *logger.Logger) *ConverterService {
	if log == nil {
		log = logger.Nop()
	}
	return &ConverterService{log: log}
}

func (s *ConverterService) CelsiusToFahrenheit(value any) (float64, error) {
	f, err := tempconv.CelsiusToFahrenheit(value)
	if err != nil {
		s.log.Debugw("rejected input", "op", "c_to_f", "value", value, "err", err)
		return 0, err
	}
	return f, nil
}

func (s *ConverterService) FahrenheitToCelsius(value any) (float64, error) {
	c, err := tempconv.FahrenheitToCelsius(value)
	if err != nil {
		s.log.Debugw("rejected input", "op", "f_to_c", "value", value, "err", err)
		return 0, err
	}
	return c, nil
}

func (s *ConverterService) Convert(value any, from, to tempconv.Scale) (float64, error) {
	out, err := tempconv.Convert(value, from, to)
	if err != nil {
		s.log.Debugw("conversion failed", "from", from, "to", to, "value", value, "err", err)
		return 0, err
	}
	return out, nil
}
