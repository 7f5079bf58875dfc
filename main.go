package main

import "matrimonial-backend/cmd"

func main() {
	cmd.Run()
}
