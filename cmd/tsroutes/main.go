// Command tsroutes inspects the TextSecure server API table: it lists routes,
// formats route paths and absolute URLs, and decodes envelope type values.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
