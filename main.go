package main

import "github.com/sightscreen/cricdata/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
