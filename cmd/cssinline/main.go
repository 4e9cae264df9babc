// Command cssinline inlines the CSS of an HTML document's style elements.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cssinline:", err)
		os.Exit(1)
	}
}
