package main

import "github.com/hyperboliclabs/agentkit/cmd"

func main() {
	cmd.Execute()
}
