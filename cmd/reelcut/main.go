// reelcut — Wire Reel Cut Optimizer
//
// A command line tool that assigns requested cut lengths to wire reels
// by item number using a first-fit decreasing strategy, and reports the
// cuts that do not fit.
//
// Build:
//   go build -o reelcut ./cmd/reelcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o reelcut.exe ./cmd/reelcut
//   GOOS=darwin  GOARCH=amd64 go build -o reelcut-darwin ./cmd/reelcut

package main

import (
	"os"

	"github.com/piwi3910/reelcut/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
