package main

import "github.com/Keyruu/nirius/cmd"

func main() {
	cmd.Execute()
}
