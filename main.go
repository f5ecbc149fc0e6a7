package main

import "github.com/alexiusacademia/laminate/cmd"

func main() {
	cmd.Execute()
}
