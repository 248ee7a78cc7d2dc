package main

import "martianoff/freezie/cmd/freezevet/commands"

func main() {
	commands.Execute()
}
