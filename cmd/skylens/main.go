package main

import "skylens/internal/cmd"

func main() {
	cmd.Run()
}
