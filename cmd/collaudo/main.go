package main

import "github.com/lbruni/collaudo/internal/cli"

func main() {
	cli.Execute()
}
