package main

import "dukatools/cmd"

func main() {
	cmd.Execute()
}
