// Command chainstat runs the empirical studies of the chained hash table:
// collision distribution, hash quality over table sizes, and the cost of
// the load factor.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logging.MustGetLogger("main")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type Options struct {
	LogLevel string `short:"l" long:"loglevel" default:"notice" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile  string `long:"logfile" description:"also write logs to this file, rotated"`
	JSON     bool   `short:"j" long:"json" description:"print reports as JSON"`
	DB       string `long:"db" description:"record reports in this SQLite database"`
	NoColor  bool   `long:"no-color" description:"disable colored output"`
}

var (
	opts Options

	// Reports are written here, logs go to stderr.
	stdout io.Writer = os.Stdout

	ctx = context.Background()
)

var (
	collisionsCmd Collisions
	sizesCmd      Sizes
	loadFactorCmd LoadFactor
	opsCmd        Ops
	runsCmd       Runs
)

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.Default)

	parser.AddCommand("collisions",
		"bucket distribution of one table",
		"The collisions command fills one table with string keys and reports how they spread over the buckets",
		&collisionsCmd)
	parser.AddCommand("sizes",
		"hash quality over table sizes",
		"The sizes command repeats the collision study over several element counts and table sizes",
		&sizesCmd)
	parser.AddCommand("loadfactor",
		"operation cost by load factor",
		"The loadfactor command times inserts and searches in tables sized for several load factors",
		&loadFactorCmd)
	parser.AddCommand("ops",
		"operation cost by element count",
		"The ops command times inserts, searches and deletes for growing element counts",
		&opsCmd)
	parser.AddCommand("runs",
		"list recorded reports",
		"The runs command lists the reports recorded with --db",
		&runsCmd)

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}

		setupLogging(opts)

		color.NoColor = color.NoColor || opts.NoColor || opts.JSON

		return command.Execute(args)
	}

	return parser
}

func main() {
	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if _, err := newParser().Parse(); err != nil {
		cancel()
		os.Exit(1)
	}
}

func setupLogging(o Options) {
	backendStdout := logging.NewLogBackend(os.Stderr, "", 0)
	backends := []logging.Backend{logging.NewBackendFormatter(backendStdout, stdoutLogFormat)}

	if o.LogFile != "" {
		w := &lumberjack.Logger{
			Filename:   o.LogFile,
			MaxSize:    10, // Megabytes
			MaxBackups: 3,
			MaxAge:     30, // Days
		}

		backendFile := logging.NewLogBackend(w, "", 0)
		backends = append(backends, logging.NewBackendFormatter(backendFile, fileLogFormat))
	}

	logging.SetBackend(backends...)
	logging.SetLevel(parseLevel(o.LogLevel), "")
}

func parseLevel(s string) logging.Level {
	switch strings.ToLower(s) {
	case "debug":
		return logging.DEBUG
	case "info":
		return logging.INFO
	case "notice":
		return logging.NOTICE
	case "warning":
		return logging.WARNING
	case "error":
		return logging.ERROR
	case "critical":
		return logging.CRITICAL
	default:
		return logging.NOTICE
	}
}
