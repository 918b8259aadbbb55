package main

import "floor-plan/cmd"

func main() {
	cmd.Execute()
}
