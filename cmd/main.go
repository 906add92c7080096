package main

import (
	"fmt"
	"io"
	"os"

	"tempconv"
	"tempconv/internal/config"
	"tempconv/internal/logger"
	"tempconv/internal/service"

	"github.com/spf13/cast"
)

const appName = "tempconv"

func main() {
	// load flags, env and configs/config.yml
	cfg, err := config.Load(appName, os.Args[1:])
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	code := run(cfg, os.Stdout, os.Stderr, log)
	_ = log.Sync()
	os.Exit(code)
}

// run executes the selected mode and returns the process exit status.
func run(cfg config.Config, stdout, stderr io.Writer, log *logger.Logger) int {
	services := service.NewService(service.Options{
		Out:       stdout,
		ErrOut:    stderr,
		Tolerance: cfg.Tolerance,
		Log:       log,
	})

	if cfg.ConvertMode() {
		return convertArgs(services, cfg, stdout, stderr, log)
	}
	return services.Run().ExitCode()
}

// convertArgs converts every positional argument and prints one line per value.
func convertArgs(conv service.Converter, cfg config.Config, stdout, stderr io.Writer, log *logger.Logger) int {
	from, err := tempconv.ParseScale(cfg.From)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if len(cfg.Args) == 0 {
		fmt.Fprintln(stderr, "error: no values to convert")
		return 1
	}

	to := from.Other()
	code := 0
	for _, arg := range cfg.Args {
		out, err := conv.Convert(parseArg(arg), from, to)
		if err != nil {
			log.Warnw("conversion failed", "value", arg, "from", from, "err", err)
			fmt.Fprintf(stderr, "%s: %v\n", arg, err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s%s = %.2f%s\n", arg, from.Symbol(), out, to.Symbol())
	}
	return code
}

// parseArg returns arg as a float64 when it reads as a number and the raw
// string otherwise, leaving the rejection to the converter.
func parseArg(arg string) any {
	v, err := cast.ToFloat64E(arg)
	if err != nil {
		return arg
	}
	return v
}
