package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PenSheet/internal/render"
)

// NewModeSelector builds the point|line|bezier selector. It always holds
// a selection.
func NewModeSelector(initial render.Mode) *widget.RadioGroup {
	radio := widget.NewRadioGroup(render.ModeNames(), nil)
	radio.Horizontal = true
	radio.Required = true
	radio.SetSelected(initial.String())
	return radio
}

func NewToolbar(modes *widget.RadioGroup) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel("Draw:"),
		modes,
		layout.NewSpacer(),
	)
}
