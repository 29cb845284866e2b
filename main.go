package main

import "github.com/defa-pool/defa/cmd"

func main() {
	cmd.Execute()
}
