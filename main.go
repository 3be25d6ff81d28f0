package main

import "swipe-travel-backend/cmd"

func main() {
	cmd.Run()
}
