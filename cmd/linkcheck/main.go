// Command linkcheck validates chain continuity of partitioned
// particle-simulation output.
package main

import "github.com/mesh-intelligence/linkcheck/internal/cli"

func main() {
	cli.Execute()
}
