package main

import "github.com/jevan001/Turbomate-Ai/cli"

func main() {
	cli.Execute()
}
