package main

import "github.com/mengelbart/gst-tutorials/cmd"

func main() {
	cmd.Execute()
}
