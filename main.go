package main

import "github.com/brogergvhs/evangelio/cmd"

func main() {
	cmd.Execute()
}
