package main

import "review-hub/cmd"

func main() {
	cmd.Execute()
}
