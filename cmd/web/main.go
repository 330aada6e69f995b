package main

import "skillconnect/internal/app"

func main() {
	app.Run()
}
