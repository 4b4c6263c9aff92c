// Command arenaflags parses its arguments against a flag table and prints
// the flags it recognised. All parsed strings live in one arena that is
// freed before the process exits.
//
// Configuration comes from the environment:
//
//	ARENAFLAGS_BLOCK_SIZE  arena block unit in bytes (default 8192)
//	ARENAFLAGS_LOG_LEVEL   debug, info, warn or error (default warn)
//	ARENAFLAGS_NO_COLOR    disable bold labels
//	ARENAFLAGS_CONFIG      optional YAML/JSON/TOML file, may define "flags"
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/args"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "arenaflags",
		Level:  log.WarnLevel,
	})

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "arenaflags: %v\n", err)
		return 1
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warn("ignoring log level", "value", cfg.LogLevel, "err", err)
	} else {
		logger.SetLevel(level)
	}

	a := arena.NewArena(cfg.BlockSize)
	defer a.Free()

	out := newPrinter(stdout, cfg.NoColor)
	p := args.NewParser(cfg.Flags, args.WithLogger(logger))

	res, err := p.Parse(a, argv)
	if err != nil {
		out.failure(err)
		return 1
	}

	for _, u := range res.Unknown {
		out.unknown(u)
	}
	for _, arg := range res.Args {
		out.arg(arg)
	}

	m := a.Metrics()
	logger.Debug("arena stats",
		"blocks", m.NumBlocks,
		"capacity", humanize.IBytes(uint64(m.Capacity)),
		"usage", humanize.IBytes(uint64(m.Usage)),
		"utilization", fmt.Sprintf("%.1f%%", m.Utilization*100),
	)
	return 0
}
