// Command navroute plans routes through a multi-floor building.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "navroute: %v\n", err)
		os.Exit(1)
	}
}
