package main

import "github.com/ofx-tools/wsexport/cmd"

func main() {
	cmd.Execute()
}
