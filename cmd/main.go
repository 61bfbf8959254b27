package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-opus-magnum/cmd/omdecode/launcher"
)

func main() {

	// Gather the full list of command-line arguments
	arguments := os.Args

	err := launcher.Launch(arguments)

	if err != nil {

		// Report the issue to stderr so the user sees it
		fmt.Fprintln(os.Stderr, "Error:", err)

		// Exit with a non-zero status code to indicate failure
		os.Exit(1)
	}

}
