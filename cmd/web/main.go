package main

import "cardlink_backend/internal/app"

func main() {
	app.Run()
}
