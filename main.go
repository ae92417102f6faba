package main

import "github.com/okhsunrog/sch-parse/cmd"

func main() {
	cmd.Execute()
}
