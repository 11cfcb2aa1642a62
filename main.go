package main

import "github.com/hvollset/dinodaily/cmd"

func main() {
	cmd.Execute()
}
