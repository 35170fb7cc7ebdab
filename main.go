package main

import "github.com/amterp/freecell/internal/cli"

func main() {
	cli.Run()
}
