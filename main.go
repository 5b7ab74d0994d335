package main

import "data-exporter/cmd"

func main() {
	cmd.Execute()
}
