// Command mlbonds infers the bonds of molecules in xyz files with a trained
// classifier and writes them as V2000 connection tables. It also exports
// feature tables and training sets for new models.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mlbonds:", err)
		os.Exit(1)
	}
}
