package main

import "github.com/mouse-blink/infoclust/cmd"

func main() {
	cmd.Execute()
}
