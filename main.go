package main

import "github.com/nextlevelbuilder/botmaster/cmd"

func main() {
	cmd.Execute()
}
