package main

import (
	"fmt"
	"os"

	"github.com/tdmtools/spanline/cmd/spanline/commands"
	"github.com/tdmtools/spanline/pkg/errors"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spanline: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error codes to the documented exit codes: 2 drift found,
// 3 span writes rejected, 4 device store unavailable, 1 everything else.
func exitCode(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrDrift:
		return 2
	case errors.ErrDeviceWrite:
		return 3
	case errors.ErrDeviceEnum:
		return 4
	default:
		return 1
	}
}
