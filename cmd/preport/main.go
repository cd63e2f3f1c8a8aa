package main

import (
	"preport/internal/cli"
)

func main() {
	cli.Execute()
}
