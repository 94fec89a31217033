package main

import "github.com/cinveen/dictate/cmd"

func main() {
	cmd.Execute()
}
