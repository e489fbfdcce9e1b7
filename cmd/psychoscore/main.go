// Command psychoscore scores a DISC or PAPI answer file offline and prints
// the analysis as JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
