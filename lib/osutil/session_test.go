package osutil

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestSignalContextCancelsOnSigterm(t *testing.T) {
	ctx, stop := SignalContext(context.Background())
	defer stop()

	err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
}
