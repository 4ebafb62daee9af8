package main

import "earlyexport/cmd"

func main() {
	cmd.Execute()
}
