// Command hyperspacectl runs a single LiDAR placement solve from a
// params file and prints the JSON result to stdout.
package main

import "github.com/lnesto74/hyperspace/cmd/hyperspacectl/cmd"

func main() {
	cmd.Execute()
}
