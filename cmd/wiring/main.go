package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/wiring/internal/application"
	"github.com/eugenenazirov/wiring/internal/config"
	"github.com/eugenenazirov/wiring/internal/loader"
	"github.com/eugenenazirov/wiring/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("wiring", "Builds the data provider and calculator named in a components file, wires them and prints the result")
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.UsageWriter(stderr)
	terminated, terminateCode := false, application.ExitOK
	kingpinApp.Terminate(func(code int) {
		terminated, terminateCode = true, code
	})
	settingsFile := kingpinApp.Flag("settings", "Path to YAML settings file").String()
	componentsFile := kingpinApp.Flag("components", "Path to the two-line components file (default config.txt)").String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding: console or json").String()
	list := kingpinApp.Flag("list", "Print registered component identifiers and exit").Bool()

	_, err := kingpinApp.Parse(args)
	if terminated {
		return terminateCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "wiring: %v\n", err)
		return application.ExitFailure
	}

	cfg, err := config.Load(&config.CLIOverrides{
		SettingsFile:   *settingsFile,
		ComponentsFile: componentsFile,
		LogLevel:       logLevel,
		LogEncoding:    logEncoding,
	})
	if err != nil {
		fmt.Fprintf(stderr, "wiring: failed to load configuration: %v\n", err)
		return application.ExitFailure
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		fmt.Fprintf(stderr, "wiring: failed to initialize logger: %v\n", err)
		return application.ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return application.ExitFailure
	}

	if *list {
		if err := app.ListComponents(stdout); err != nil {
			logger.Error("failed to list components", zap.Error(err))
			return application.ExitFailure
		}
		return application.ExitOK
	}

	if err := app.Run(stdout); err != nil {
		code := application.ExitCode(err)
		fields := []zap.Field{zap.Error(err), zap.Int("exit_code", code)}
		var loadErr *loader.Error
		if errors.As(err, &loadErr) {
			fields = append(fields,
				zap.Stringer("step", loadErr.Step),
				zap.String("identifier", loadErr.Identifier),
			)
		}
		logger.Error("run failed", fields...)
		return code
	}
	return application.ExitOK
}
