// Command decdnnf loads a Decision-DNNF and answers queries against it:
// model counting, model enumeration, direct access, a single satisfying
// model, uniform sampling, and format translation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
