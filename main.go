package main

import "github.com/olivier-w/climp-spectrum/cmd"

func main() {
	cmd.Execute()
}
