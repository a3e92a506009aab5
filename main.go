package main

import "multiselect/internal/cmd"

func main() {
	cmd.Execute()
}
