package main

import "github.com/rustyeddy/candleterm/internal/cli"

func main() {
	cli.Execute()
}
