package main

import "github.com/halcyonlab/tablechat/cmd"

func main() {
	cmd.Execute()
}
