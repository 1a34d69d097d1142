package main

import "termrpg/cmd"

func main() {
	cmd.Execute()
}
