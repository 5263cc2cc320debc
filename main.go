package main

import "github.com/vietdv277/asgcfg/cmd"

func main() {
	cmd.Execute()
}
