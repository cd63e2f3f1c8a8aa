package utils

import (
	"fmt"
	"os"

	"preport/internal/systemcodes"

	"github.com/spf13/cobra"
)

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

// RunCommandWrapper adapts an error-returning run function to cobra's
// Run signature. Command errors are printed, not propagated; cobra's
// own usage error for the failed command would only add noise.
func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(systemcodes.ErrorCodeGeneric)
		}
	}
}
