package main

import "event-discovery-app/config"

func main() {
	config.RunServer()
}
