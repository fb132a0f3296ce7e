package main

import "github.com/alexiusacademia/goaci/cmd"

func main() {
	cmd.Execute()
}
