// Package main provides the wepin CLI: SDK URL resolution, balance formatting,
// error-code lookup and widget bridge payloads from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/logger"
	"github.com/wepin/wepin-common-go/pkg/werrors"
	"go.uber.org/zap"
)

func main() {
	os.Exit(execute(context.Background(), newRootCommand(), os.Stderr))
}

// execute runs cmd and returns the process exit code. A failure is logged
// before the logger is flushed.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err), zap.Int("code", int(werrors.CodeOf(err))))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
