package main

import "github.com/brogergvhs/wikiep/cmd"

func main() {
	cmd.Execute()
}
