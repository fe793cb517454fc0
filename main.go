package main

import "github.com/mole-wink/logmend/cmd"

func main() {
	cmd.Execute()
}
