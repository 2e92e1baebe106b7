// Package options contains CLI flags and helpers shared by the
// seastream commands.
package options

import (
	"fmt"

	"github.com/pushfoo/seastream/pkg/config"
	"github.com/pushfoo/seastream/pkg/stream"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is a flag for commands that accept a config file.
var Config = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to the YAML config file",
}

// Debug is a flag for commands that allow debug logging.
var Debug = &cli.BoolFlag{
	Name:    "debug",
	Aliases: []string{"d"},
	Usage:   "Enable debug logging (precedence over the config setting)",
}

// Common is a set of flags shared by all seastream commands.
var Common = []cli.Flag{Config, Debug}

// GetConfigFromContext reads the config file named by the --config
// flag or returns the defaults when the flag is not given.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config"); len(configFile) != 0 {
		return config.LoadFile(configFile)
	}
	return config.Default(), nil
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If LogPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.Config) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = []string{"stderr"}

	if logPath := cfg.LogPath; logPath != "" {
		if err := stream.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, err
		}
		cc.OutputPaths = []string{logPath}
	}

	return cc.Build()
}
