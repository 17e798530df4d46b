package main

import "team-retro-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
