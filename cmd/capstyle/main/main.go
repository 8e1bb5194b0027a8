package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/capstyle/cmd/capstyle"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/ui/styles"
)

func main() {
	rootCmd := capstyle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))

		// usage mistakes get the help text, runtime failures do not
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}

		os.Exit(1)
	}
}
