package main

import "hirecost/internal/app/server"

func main() {
	server.Run()
}
