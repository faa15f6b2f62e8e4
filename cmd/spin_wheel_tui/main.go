package main

import (
	"fmt"
	"os"
	"spin_wheel/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := app.NewTerminalApp().Run(); err != nil {
		// Экран уже восстановлен, можно писать в stderr
		fmt.Fprintf(os.Stderr, "spin_wheel_tui: %v\n", err)
		os.Exit(1)
	}
}
