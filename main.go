package main

import "pacs/cmd"

func main() {
	cmd.Execute()
}
