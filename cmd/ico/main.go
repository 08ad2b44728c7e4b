package main

import (
	"github.com/anthonyvouin/icoproject/internal/cli"
)

func main() {
	cli.Execute()
}
