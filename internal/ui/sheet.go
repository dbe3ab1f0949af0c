package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"PenSheet/internal/config"
	"PenSheet/internal/render"
	"PenSheet/internal/state"
)

// SheetWidget is the drawing surface. It turns pointer input into contact
// events for the session and shows the frame the renderer produces.
type SheetWidget struct {
	widget.BaseWidget

	session  *state.Session
	pen      config.Pen
	mode     func() string
	renderer render.Renderer
	frame    *render.Frame
	image    *canvas.Image

	// set while the stroke in progress came from the stylus bridge
	bridgeOwns bool
}

var _ fyne.Widget = (*SheetWidget)(nil)
var _ fyne.Draggable = (*SheetWidget)(nil)
var _ desktop.Mouseable = (*SheetWidget)(nil)
var _ mobile.Touchable = (*SheetWidget)(nil)
var _ state.Surface = (*SheetWidget)(nil)

func NewSheetWidget(pen config.Pen) *SheetWidget {
	s := &SheetWidget{
		pen:  pen,
		mode: func() string { return render.ModeLine.String() },
	}
	s.image = canvas.NewImageFromImage(nil)
	s.image.FillMode = canvas.ImageFillStretch
	s.ExtendBaseWidget(s)
	return s
}

// SetSession attaches the session that receives contacts and supplies
// strokes for drawing.
func (s *SheetWidget) SetSession(session *state.Session) {
	s.session = session
}

// SetModeSource sets the selector polled for the drawing mode every frame.
func (s *SheetWidget) SetModeSource(mode func() string) {
	s.mode = mode
}

// Bounds returns the sheet's screen position and logical size.
func (s *SheetWidget) Bounds() state.Rect {
	var pos fyne.Position
	if app := fyne.CurrentApp(); app != nil {
		pos = app.Driver().AbsolutePositionForObject(s)
	}
	size := s.Size()
	return state.Rect{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

// Feed hands ev from the widget's own pointer input to the session.
// Contract violations are bugs in the input source and stop the program.
// Input is dropped while a bridge pen owns the stroke in progress.
func (s *SheetWidget) Feed(ev state.ContactEvent) {
	if s.session == nil {
		return
	}
	if s.bridgeOwns {
		return
	}
	if _, err := s.session.Handle(ev); err != nil {
		log.Panicf("[UI] Contact %s: %v", ev.Phase, err)
	}
}

// FeedBridge hands over an event from a stylus bridge pen, whose
// coordinates are relative to the sheet. Bridge input is untrusted: events
// that the session would reject, or that would touch a stroke the bridge
// did not start, are dropped with a log line.
func (s *SheetWidget) FeedBridge(ev state.ContactEvent) {
	if s.session == nil {
		return
	}
	if ev.Phase == state.PhaseStart {
		if s.session.Capturing() {
			log.Printf("[UI] Dropped bridge start: a stroke is already in progress")
			return
		}
	} else if !s.bridgeOwns {
		return
	}

	r := s.Bounds()
	for i := range ev.Contacts {
		ev.Contacts[i].ClientX += r.X
		ev.Contacts[i].ClientY += r.Y
	}
	if _, err := s.session.Handle(ev); err != nil {
		log.Printf("[UI] Dropped bridge %s: %v", ev.Phase, err)
	}
	s.bridgeOwns = s.session.Capturing()
}

func (s *SheetWidget) mouseContact(at fyne.Position) state.Contact {
	c := state.Contact{
		ClientX: float64(at.X),
		ClientY: float64(at.Y),
		Type:    state.TouchMouse,
	}
	if s.pen.MouseAsStylus {
		c.Type = state.TouchStylus
		c.Force = s.pen.MouseForce
	}
	return c
}

func (s *SheetWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.Feed(state.ContactEvent{
		Phase:    state.PhaseStart,
		Contacts: []state.Contact{s.mouseContact(e.AbsolutePosition)},
	})
}

func (s *SheetWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.Feed(state.ContactEvent{Phase: state.PhaseEnd})
	}
}

func (s *SheetWidget) Dragged(e *fyne.DragEvent) {
	s.Feed(state.ContactEvent{
		Phase:    state.PhaseMove,
		Contacts: []state.Contact{s.mouseContact(e.AbsolutePosition)},
	})
}

func (s *SheetWidget) DragEnd() {
	s.Feed(state.ContactEvent{Phase: state.PhaseEnd})
}

// Finger touches carry no stylus tag and are filtered by the session.
func (s *SheetWidget) TouchDown(e *mobile.TouchEvent) {
	s.Feed(state.ContactEvent{
		Phase: state.PhaseStart,
		Contacts: []state.Contact{{
			ClientX: float64(e.AbsolutePosition.X),
			ClientY: float64(e.AbsolutePosition.Y),
			Type:    state.TouchDirect,
		}},
	})
}

func (s *SheetWidget) TouchUp(*mobile.TouchEvent) {
	s.Feed(state.ContactEvent{Phase: state.PhaseEnd})
}

func (s *SheetWidget) TouchCancel(*mobile.TouchEvent) {
	s.Feed(state.ContactEvent{Phase: state.PhaseEnd})
}

func (s *SheetWidget) MouseIn(*desktop.MouseEvent)    {}
func (s *SheetWidget) MouseOut()                      {}
func (s *SheetWidget) MouseMoved(*desktop.MouseEvent) {}

func (s *SheetWidget) scale() float64 {
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(s); c != nil {
			return float64(c.Scale())
		}
	}
	return 1
}

// DrawFrame redraws every stroke. It runs once per display tick on the UI
// goroutine.
func (s *SheetWidget) DrawFrame() {
	if s.session == nil {
		return
	}
	size := s.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	w, h, scale := float64(size.Width), float64(size.Height), s.scale()
	if s.frame == nil || !s.frame.Fits(w, h, scale) {
		if s.frame != nil {
			s.frame.Close()
		}
		frame, err := render.NewFrame(w, h, scale)
		if err != nil {
			log.Panicf("[UI] Sheet: %v", err)
		}
		s.frame = frame
	}

	mode, err := render.ParseMode(s.mode())
	if err != nil {
		log.Panicf("[UI] Mode selector: %v", err)
	}
	if err := s.renderer.Draw(s.frame.Canvas(), s.session.Store().Strokes(), mode); err != nil {
		log.Panicf("[UI] Render: %v", err)
	}

	s.image.Image = s.frame.Image()
	s.image.Refresh()
}

// Frame returns the most recently allocated frame, if any.
func (s *SheetWidget) Frame() *render.Frame {
	return s.frame
}

func (s *SheetWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sheetWidgetRenderer{sheet: s}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type sheetWidgetRenderer struct {
	sheet      *SheetWidget
	background *canvas.Rectangle
}

func (r *sheetWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.sheet.image}
}

func (r *sheetWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.sheet.image.Resize(size)
}

func (r *sheetWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sheetWidgetRenderer) Refresh() {
	canvas.Refresh(r.sheet)
}

func (r *sheetWidgetRenderer) Destroy() {
	if r.sheet.frame != nil {
		r.sheet.frame.Close()
		r.sheet.frame = nil
	}
}
