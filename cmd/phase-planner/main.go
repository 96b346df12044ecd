package main

import "phase-planner/src/handler/cli"

func main() {
	cli.Run()
}
