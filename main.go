package main

import "github.com/opsfactor/buildprep-cli/cmd"

func main() {
	cmd.Execute()
}
