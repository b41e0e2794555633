// Command lorem prints placeholder content and serves the demo application.
//
//	lorem sentence
//	lorem words --min 3 --max 6
//	lorem date --format pattern --pattern "MMM d, yyyy"
//	lorem color --palette system --count 5
//	lorem serve
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
