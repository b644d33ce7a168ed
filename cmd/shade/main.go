package main

import "github.com/cruzalex/shade/internal/cli"

func main() {
	cli.Execute()
}
