package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/mdns"

	"PenSheet/internal/config"
	pnet "PenSheet/internal/net"
	"PenSheet/internal/render"
	"PenSheet/internal/state"
)

// App is the application root. It owns the session and wires it to the
// sheet, the status line, the histogram and the optional stylus bridge.
type App struct {
	Session *state.Session
	Sheet   *SheetWidget
	Status  *StatusBar
	Chart   *HistogramChart
	Modes   *widget.RadioGroup

	cfg    config.Config
	app    fyne.App
	window fyne.Window
	bridge *pnet.Bridge
	mdns   *mdns.Server
}

// NewApp builds the window and the session for a single sketching run.
func NewApp(a fyne.App, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	mode, _ := render.ParseMode(cfg.Sheet.Mode)

	pa := &App{
		cfg:    cfg,
		app:    a,
		Status: NewStatusBar(),
		Chart:  NewHistogramChart("Interval [ms]"),
		Sheet:  NewSheetWidget(cfg.Pen),
		Modes:  NewModeSelector(mode),
	}

	timing := state.NewTimingReporter(pa.Chart)
	pa.Session = state.NewSession(pa.Sheet,
		state.WithReporter(pa.Status),
		state.WithStrokeEnd(timing.Report),
	)
	pa.Sheet.SetSession(pa.Session)
	pa.Sheet.SetModeSource(func() string { return pa.Modes.Selected })

	pa.window = a.NewWindow("PenSheet")
	pa.window.Resize(fyne.NewSize(1024, 768))

	split := container.NewVSplit(pa.Sheet, pa.Chart)
	split.Offset = 0.75
	content := container.NewBorder(NewToolbar(pa.Modes), pa.Status.Object(), nil, nil, split)
	pa.window.SetContent(content)
	return pa, nil
}

// Run shows the window and blocks until it is closed.
func (pa *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go render.Loop(ctx, pa.cfg.Sheet.FPS, fyne.Do, pa.Sheet.DrawFrame)

	if pa.cfg.Bridge.Enabled {
		pa.startBridge()
		defer pa.stopBridge()
	}

	pa.window.ShowAndRun()
}

func (pa *App) startBridge() {
	pa.bridge = pnet.NewBridge(func(ev state.ContactEvent) {
		fyne.Do(func() { pa.Sheet.FeedBridge(ev) })
	})

	port := pa.cfg.Bridge.Port
	go func() {
		if err := pa.bridge.ListenAndServe(port); err != nil {
			log.Printf("[BRIDGE] %v", err)
			fyne.Do(func() { pa.Status.Status(state.StatusError, "stylus bridge stopped") })
		}
	}()

	if pa.cfg.Bridge.Advertise {
		server, err := pnet.Advertise(port)
		if err != nil {
			log.Printf("[MDNS] Could not advertise bridge: %v", err)
		} else {
			pa.mdns = server
		}
	}

	url := pnet.URL(pnet.GetOutgoingIP(), port)
	log.Printf("[BRIDGE] Pens can connect at %s", url)
	pa.Status.Status(state.StatusInfo, "stylus bridge at "+url)
}

func (pa *App) stopBridge() {
	if pa.mdns != nil {
		pa.mdns.Shutdown()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pa.bridge.Shutdown(ctx); err != nil {
		log.Printf("[BRIDGE] Shutdown: %v", err)
	}
}
