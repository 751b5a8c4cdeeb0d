package main

import "github.com/they4kman/cavesweep/cmd"

func main() {
	cmd.Execute()
}
