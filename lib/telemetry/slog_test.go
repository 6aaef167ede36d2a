package telemetry

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSlogWritesConsoleAndFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "etl_process.log")

	closer, err := InitSlog(SlogOptions{LogFile: logFile, Console: &console})
	if err != nil {
		t.Fatal(err)
	}

	slog.Info("processing project", "project_id", "p-1")
	slog.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	require.Contains(t, console.String(), "processing project")
	require.NotContains(t, console.String(), "hidden at info level")

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, string(contents), "msg=\"processing project\"")
	require.Contains(t, string(contents), "project_id=p-1")
	require.Contains(t, string(contents), "level=INFO")
}

func TestInitSlogVerbose(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var console bytes.Buffer
	closer, err := InitSlog(SlogOptions{Verbose: true, Console: &console})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	slog.Debug("design fetched")
	require.Contains(t, console.String(), "design fetched")
}
