// Package filecmd contains the dump and put file commands of the
// seastream CLI.
package filecmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/pushfoo/seastream/cli/options"
	"github.com/pushfoo/seastream/pkg/config"
	"github.com/pushfoo/seastream/pkg/stream"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// encFlag overrides the config's default payload encoding.
var encFlag = &cli.StringFlag{
	Name:    "enc",
	Aliases: []string{"e"},
	Usage:   "Payload encoding: hex, base64 or raw",
}

// NewCommands returns the file commands for the seastream CLI.
func NewCommands() []*cli.Command {
	dumpFlags := append([]cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   -1,
			Usage:   "Number of bytes to read, -1 reads to the end",
		},
		encFlag,
	}, options.Common...)
	putFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   "wb",
			Usage:   "Binary file open mode, e.g. wb or ab",
		},
		encFlag,
	}, options.Common...)
	return []*cli.Command{
		{
			Name:      "dump",
			Usage:     "Dump bytes from a binary file",
			UsageText: "dump [-n <count>] [-e <encoding>] <file>",
			Action:    dump,
			Flags:     dumpFlags,
		},
		{
			Name:      "put",
			Usage:     "Write a payload into a binary file",
			UsageText: "put [-m <mode>] [-e <encoding>] <file> <payload>",
			Action:    put,
			Flags:     putFlags,
		},
	}
}

func setup(ctx *cli.Context) (config.Config, *zap.Logger, error) {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cfg, nil, err
	}
	if enc := ctx.String("enc"); enc != "" {
		if !config.ValidEncoding(enc) {
			return cfg, nil, fmt.Errorf("unknown encoding %q: hex, base64 or raw are supported", enc)
		}
		cfg.Encoding = enc
	}
	logger, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func dump(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("missing file argument", 1)
	}
	cfg, logger, err := setup(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	filePath := ctx.Args().First()
	s, err := stream.Open(filePath, "rb")
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to open file: %w", err), 1)
	}
	defer s.Close()

	b, err := s.ReadN(ctx.Int("count"))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to read file: %w", err), 1)
	}
	logger.Debug("read payload", zap.String("file", filePath), zap.Int("bytes", len(b)))

	switch cfg.Encoding {
	case config.EncodingBase64:
		fmt.Fprintln(ctx.App.Writer, base64.StdEncoding.EncodeToString(b))
	case config.EncodingRaw:
		_, _ = ctx.App.Writer.Write(b)
	default:
		fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b))
	}
	return nil
}

func put(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.Exit("missing file or payload argument", 1)
	}
	cfg, logger, err := setup(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	payload, err := decodePayload(cfg.Encoding, ctx.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to decode payload: %w", err), 1)
	}

	filePath := ctx.Args().First()
	s, err := stream.Open(filePath, ctx.String("mode"))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to open file: %w", err), 1)
	}
	defer s.Close()

	n, err := s.Write(payload)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to write file: %w", err), 1)
	}
	logger.Info("wrote payload", zap.String("file", filePath), zap.Int("bytes", n))
	return nil
}

func decodePayload(encoding string, payload string) ([]byte, error) {
	switch encoding {
	case config.EncodingBase64:
		return base64.StdEncoding.DecodeString(payload)
	case config.EncodingRaw:
		return []byte(payload), nil
	default:
		return hex.DecodeString(payload)
	}
}
