// Command macperms checks and requests macOS privacy permissions for the
// current process.
//
// Usage:
//
//	macperms check [permission...] [--json]
//	macperms request <permission...> [--interactive] [--wait 30s]
//	macperms list
//	macperms doctor
//	macperms serve
//
// Permissions are accessibility, camera, microphone, screen-recording,
// input-monitoring and full-disk-access. On systems other than macOS every
// permission reports granted.
//
// Environment variables:
//
//	MACPERMS_DEBUG=1         debug logging
//	MACPERMS_LOG_JSON=1      JSON log records
//	MACPERMS_LOG_DEST=...    stderr, file:<path> or both:<path>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(newApp())
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "macperms: %v\n", err)
		stop()
		os.Exit(1)
	}
}
