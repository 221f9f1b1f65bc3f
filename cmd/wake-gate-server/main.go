package main

import "github.com/oshokin/wake-gate/cmd/wake-gate-server/cmd"

func main() {
	cmd.Execute()
}
