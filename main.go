package main

import "charity-connect.com/charity-connect/cmd"

func main() {
	cmd.Execute()
}
