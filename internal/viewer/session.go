package viewer

import (
	"context"

	"github.com/akurella/DeckAPI/internal/config"
)

type State string

const (
	StateLoading    State = "Loading"
	StateReady      State = "Ready"
	StateNavigating State = "Navigating"
	StateZooming    State = "Zooming"
	StateRendering  State = "Rendering"
	StateError      State = "Error"
)

type FitMode string

const (
	FitWidth   FitMode = "fit-width"
	FitPage    FitMode = "fit-page"
	ActualSize FitMode = "actual-size"
	CustomZoom FitMode = "custom-zoom"
)

// Session is the per-open-document viewer state. Entirely ephemeral - a new
// document gets a new session, nothing persists across documents.
type Session struct {
	Id          string  `json:"id"`
	DeckId      string  `json:"deck_id"`
	State       State   `json:"state"`
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
	Zoom        float64 `json:"zoom"`
	Fit         FitMode `json:"fit_mode"`
	DarkMode    bool    `json:"dark_mode"`
	Fullscreen  bool    `json:"fullscreen"`
	ContainerW  int     `json:"container_w"`
	ContainerH  int     `json:"container_h"`
	CanvasW     int     `json:"canvas_w"`
	CanvasH     int     `json:"canvas_h"`
	LastError   string  `json:"last_error,omitempty"`

	//render race guard: only the most recently issued token may apply
	RenderSeq  int64          `json:"render_seq"`
	PageErrors map[int]string `json:"page_errors,omitempty"`
}

type SessionStore interface {
	SaveSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id string) (Session, bool)
	DeleteSession(ctx context.Context, id string)
}

func NewSession(id, deckId string, containerW, containerH int) Session {
	return Session{
		Id:          id,
		DeckId:      deckId,
		State:       StateLoading,
		CurrentPage: 1,
		Zoom:        1.0,
		Fit:         FitPage,
		ContainerW:  containerW,
		ContainerH:  containerH,
		CanvasW:     config.CanvasWidth,
		CanvasH:     config.CanvasHeight,
		PageErrors:  make(map[int]string),
	}
}

// Ready completes the Loading state once the deck is available.
func (s *Session) Ready(totalPages int) {
	s.TotalPages = totalPages
	s.CurrentPage = 1
	s.State = StateReady
	s.LastError = ""
}

// Fail moves the session to the terminal Error state. Retry is the only way
// out.
func (s *Session) Fail(msg string) {
	s.State = StateError
	s.LastError = msg
}

func (s *Session) Retry() {
	if s.State == StateError {
		s.State = StateLoading
		s.LastError = ""
	}
}

// GoToPage clamps the target to [1, totalPages]. Boundary requests are
// no-ops and do not trigger a re-render.
func (s *Session) GoToPage(n int) bool {
	if s.State == StateError || s.State == StateLoading {
		return false
	}
	if n < 1 {
		n = 1
	}
	if n > s.TotalPages {
		n = s.TotalPages
	}
	if n == s.CurrentPage {
		return false
	}
	s.CurrentPage = n
	s.State = StateNavigating
	return true
}

func (s *Session) Next() bool     { return s.GoToPage(s.CurrentPage + 1) }
func (s *Session) Previous() bool { return s.GoToPage(s.CurrentPage - 1) }

func (s *Session) ZoomIn() {
	s.setZoom(s.Zoom + config.ZoomStep)
}

func (s *Session) ZoomOut() {
	s.setZoom(s.Zoom - config.ZoomStep)
}

func (s *Session) setZoom(z float64) {
	if s.State == StateError || s.State == StateLoading {
		return
	}
	if z < config.ZoomMin {
		z = config.ZoomMin
	}
	if z > config.ZoomMax {
		z = config.ZoomMax
	}
	s.Zoom = z
	s.Fit = CustomZoom //manual zoom overrides any named fit mode
	s.State = StateZooming
}

// SetFitMode selects a named fit mode, overriding manual zoom. The effective
// scale is recomputed from the current container dimensions on read.
func (s *Session) SetFitMode(mode FitMode) {
	if s.State == StateError || s.State == StateLoading {
		return
	}
	switch mode {
	case FitWidth, FitPage, ActualSize, CustomZoom:
		s.Fit = mode
		s.State = StateZooming
	}
}

// Resize records new container dimensions; fit-width/fit-page scale follows
// automatically via EffectiveScale.
func (s *Session) Resize(w, h int) {
	if w > 0 {
		s.ContainerW = w
	}
	if h > 0 {
		s.ContainerH = h
	}
}

// EffectiveScale is the scale factor the embedding UI should apply to the
// fixed-size page image.
func (s *Session) EffectiveScale() float64 {
	switch s.Fit {
	case FitWidth:
		if s.ContainerW > 0 && s.CanvasW > 0 {
			return float64(s.ContainerW) / float64(s.CanvasW)
		}
	case FitPage:
		if s.ContainerW > 0 && s.ContainerH > 0 && s.CanvasW > 0 && s.CanvasH > 0 {
			sw := float64(s.ContainerW) / float64(s.CanvasW)
			sh := float64(s.ContainerH) / float64(s.CanvasH)
			if sh < sw {
				return sh
			}
			return sw
		}
	case ActualSize:
		return 1.0
	case CustomZoom:
		return s.Zoom
	}
	return 1.0
}

func (s *Session) ToggleDarkMode() {
	s.DarkMode = !s.DarkMode
}

func (s *Session) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
}

func (s *Session) ExitFullscreen() {
	s.Fullscreen = false
}

// BeginRender issues a render token for the current page. Rapid navigation
// can leave multiple renders in flight; only the newest token wins.
func (s *Session) BeginRender() int64 {
	s.RenderSeq++
	s.State = StateRendering
	return s.RenderSeq
}

// FinishRender applies a completed render. Stale completions (token older
// than the last issued one) are discarded, not applied.
func (s *Session) FinishRender(token int64, page int, renderErr string) bool {
	if token != s.RenderSeq {
		return false
	}
	if renderErr != "" {
		//inline per-page error; navigation to other pages stays valid
		if s.PageErrors == nil {
			s.PageErrors = make(map[int]string)
		}
		s.PageErrors[page] = renderErr
	} else {
		delete(s.PageErrors, page)
	}
	s.State = StateReady
	return true
}
