package telemetry

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

const DefaultLogFile = "logs/etl_process.log"

type SlogOptions struct {
	Verbose bool
	// LogFile is appended to in addition to the console, empty disables it.
	LogFile string
	// Console defaults to os.Stderr.
	Console io.Writer
}

// InitSlog installs the default slog logger. The returned closer releases the
// log file and must be called before exit.
func InitSlog(opts SlogOptions) (io.Closer, error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	noColor := true
	if f, ok := console.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	handlers := []slog.Handler{
		tint.NewHandler(console, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    noColor,
		}),
	}

	var closer io.Closer = nopCloser{}
	if opts.LogFile != "" {
		err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	slog.Debug("logging configured", "level", level.String(), "file", opts.LogFile)
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
