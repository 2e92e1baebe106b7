package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pushfoo/seastream/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func TestGetConfigFromContext(t *testing.T) {
	t.Run("no config flag", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		cfg, err := GetConfigFromContext(ctx)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "seastream.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("LogLevel: warn\n"), os.ModePerm))

		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config", configPath, "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		cfg, err := GetConfigFromContext(ctx)
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing config file", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config", filepath.Join(t.TempDir(), "nonexistent.yml"), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		_, err := GetConfigFromContext(ctx)
		require.Error(t, err)
	})
}

func TestHandleLoggingParams(t *testing.T) {
	d := t.TempDir()
	testLog := filepath.Join(d, "file.log")

	t.Run("logdir is a file", func(t *testing.T) {
		logfile := filepath.Join(d, "logdir")
		require.NoError(t, os.WriteFile(logfile, []byte{1, 2, 3}, os.ModePerm))
		cfg := config.Config{
			LogPath: filepath.Join(logfile, "file.log"),
		}
		_, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("broken level", func(t *testing.T) {
		cfg := config.Config{
			LogPath:  testLog,
			LogLevel: "qwerty",
		}
		_, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("default", func(t *testing.T) {
		cfg := config.Config{
			LogPath: testLog,
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.InfoLevel))
		require.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("warn", func(t *testing.T) {
		cfg := config.Config{
			LogPath:  testLog,
			LogLevel: "warn",
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.WarnLevel))
		require.False(t, logger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("debug", func(t *testing.T) {
		cfg := config.Config{
			LogPath: testLog,
		}
		logger, err := HandleLoggingParams(true, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.InfoLevel))
		require.True(t, logger.Core().Enabled(zap.DebugLevel))
	})
}
