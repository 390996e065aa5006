package main

import "commerce-verifier/cmd"

func main() {
	cmd.Execute()
}
