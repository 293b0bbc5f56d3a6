package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:      "huffdemo",
		Usage:     "informal demo CLI for the huffman package",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"HUFFDEMO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "encode",
			Usage:     "encode text and print the dictionary, bits, and decoded text",
			ArgsUsage: "<text>",
			Action:    runEncode,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "tree",
					Usage: "also print the Huffman tree",
				},
				&cli.BoolFlag{
					Name:  "packed",
					Usage: "also print the bits packed into bytes, in hex",
				},
			},
		},
		&cli.Command{
			Name:      "roundtrip",
			Usage:     "check that each argument survives encode and decode",
			ArgsUsage: "<text>...",
			Action:    runRoundTrip,
		},
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func runEncode(cctx *cli.Context) error {
	text := cctx.Args().First()
	if text == "" {
		return fmt.Errorf("need to provide text as an argument")
	}

	opts := reportOptions{
		tree:   cctx.Bool("tree"),
		packed: cctx.Bool("packed"),
	}
	return writeReport(cctx.App.Writer, text, opts)
}

func runRoundTrip(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return fmt.Errorf("need to provide text as an argument")
	}

	var failed int
	for _, text := range cctx.Args().Slice() {
		if err := checkRoundTrip(text); err != nil {
			slog.Error("round trip failed", "text", text, "err", err)
			failed++
			continue
		}
		fmt.Fprintf(cctx.App.Writer, "ok\t%q\n", text)
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d inputs failed to round trip", failed, cctx.NArg())
	}
	return nil
}
