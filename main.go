package main

import "github.com/harlequix/hamfec/cmd"

func main() {
	cmd.Execute()
}
