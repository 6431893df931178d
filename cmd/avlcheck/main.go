// avlcheck drives the avl tree through scripted, random and bulk operation
// sequences and reports the first point at which it breaks.
package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

var version = "0.1.0"

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()
	defer logger.Finalise()

	rootCmd := newRootCommand()
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("FAIL"), err)
		exitwithstatus.Exit(1)
	}
}
