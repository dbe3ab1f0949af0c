package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2/app"

	"PenSheet/internal/config"
	"PenSheet/internal/ui"
)

const AppID = "io.pensheet.sketch"

func main() {
	configPath := flag.String("config", "pensheet.toml", "path to the TOML settings file")
	mode := flag.String("mode", "", "initial draw mode: point, line or bezier")
	fps := flag.Int("fps", 0, "frames drawn per second")
	bridge := flag.Bool("bridge", false, "accept pens over the websocket stylus bridge")
	bridgePort := flag.Int("bridge-port", 0, "stylus bridge port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Sheet.Mode = *mode
		case "fps":
			cfg.Sheet.FPS = *fps
		case "bridge":
			cfg.Bridge.Enabled = *bridge
		case "bridge-port":
			cfg.Bridge.Port = *bridgePort
		}
	})

	board, err := ui.NewApp(app.NewWithID(AppID), cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	log.Printf("Starting session %s in %s mode", board.Session.ID, cfg.Sheet.Mode)
	board.Run()
}
