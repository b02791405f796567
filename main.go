package main

import "gsheetdoctor/cmd"

func main() {
	cmd.Execute()
}
