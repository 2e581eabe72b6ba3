package main

import "github.com/omgnotthatguy/errtree/cmd/errtree/cmd"

func main() {
	cmd.Execute()
}
