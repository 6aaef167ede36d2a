package main

import (
	"context"

	"solarsync/cmd/solarsync/commands"
	"solarsync/lib/osutil"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	defer stop()
	commands.ExecuteContext(ctx)
}
