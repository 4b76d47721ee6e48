package main

import "github.com/studydesk/dashboard/internal/app"

func main() {
	app.Execute()
}
