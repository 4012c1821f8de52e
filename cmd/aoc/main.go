package main

import "github.com/mawkler/advent-of-code/internal/cli"

func main() {
	cli.Execute()
}
