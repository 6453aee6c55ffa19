package main

import "fridge-manager/cmd"

func main() {
	cmd.Execute()
}
