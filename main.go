package main

import "github.com/gaurav-prasanna/docpress/cmd"

func main() {
	cmd.Execute()
}
