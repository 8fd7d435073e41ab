package main

import "github.com/alexiusacademia/gobfr/cmd"

func main() {
	cmd.Execute()
}
