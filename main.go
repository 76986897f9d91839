package main

import "factory-planner/cmd"

func main() {
	cmd.Execute()
}
