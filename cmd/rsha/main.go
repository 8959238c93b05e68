package main

import "massnet.org/rsha/cmd/rsha/cmd"

func main() {
	cmd.Execute()
}
