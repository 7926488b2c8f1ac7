package main

import "github.com/exohab/exohab/cmd"

func main() {
	cmd.Execute()
}
