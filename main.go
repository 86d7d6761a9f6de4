// Idiomatic entrypoint for the Cobra CLI; delegates to cmd/root.go.

package main

import (
	"github.com/routekit/routekit/cmd"
)

func main() {
	cmd.Execute()
}
