package main

import "unbound-webhook/cmd"

func main() {
	cmd.Execute()
}
