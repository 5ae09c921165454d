package main

import (
	"github.com/wslkit/wslctl/src/wslctl/internal/cmd"
)

func main() {
	cmd.Execute()
}
