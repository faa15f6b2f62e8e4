package main

import (
	"log"
	"spin_wheel/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
