package main

import "github.com/KaramelBytes/tablecheck-cli/cmd"

func main() {
	cmd.Execute()
}
