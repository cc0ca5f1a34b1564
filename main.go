package main

import "locus/cmd"

func main() {
	cmd.Execute()
}
