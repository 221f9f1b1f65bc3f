package main

import "github.com/oshokin/wake-gate/cmd/wake-gate/cmd"

func main() {
	cmd.Execute()
}
