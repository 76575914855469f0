package main

import "github.com/gitpan/pgrep/internal/cli"

func main() {
	cli.Execute()
}
