package main

import "github.com/pfrederiksen/thai-lotto/internal/cli"

func main() {
	cli.Execute()
}
