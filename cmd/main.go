// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/itsatony/gartentrack/internal/config"
	"github.com/itsatony/gartentrack/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Initialize version info
	nuts.InitVersion()
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	nuts.L.Infof("[Main] Starting GartenTrack v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   ______           __           ______                __  ",
		"  / ____/___ ______/ /____  ____/_  __/________ ______/ /__",
		" / / __/ __ `/ ___/ __/ _ \\/ __ \\/ / / ___/ __ `/ ___/ //_/",
		"/ /_/ / /_/ / /  / /_/  __/ / / / / / /  / /_/ / /__/ ,<   ",
		"\\____/\\__,_/_/   \\__/\\___/_/ /_/_/ /_/   \\__,_/\\___/_/|_|  ",
		"..........................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
