package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/capstyle/cmd/capstyle"
	"github.com/arthur-debert/capstyle/internal/version"
)

func main() {
	rootCmd := capstyle.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CAPSTYLE",
		Section: "1",
		Source:  "capstyle " + version.Version,
		Manual:  "capstyle manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
