package main

import (
	"github.com/msommer/pickem/internal/cli"
)

func main() {
	cli.Execute()
}
