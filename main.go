package main

import "localecheck/cmd"

func main() {
	cmd.Execute()
}
