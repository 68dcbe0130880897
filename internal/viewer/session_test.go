package viewer

import "testing"

func readySession(totalPages int) Session {
	s := NewSession("sess-1", "deck-1", 1280, 720)
	s.Ready(totalPages)
	return s
}

func TestSession_InitialState(t *testing.T) {
	s := NewSession("sess-1", "deck-1", 1280, 720)
	if s.State != StateLoading {
		t.Errorf("New session state = %s, want Loading", s.State)
	}
	if s.CurrentPage != 1 || s.Zoom != 1.0 || s.Fit != FitPage {
		t.Errorf("Bad defaults: page=%d zoom=%v fit=%s", s.CurrentPage, s.Zoom, s.Fit)
	}
}

func TestSession_PageClamping(t *testing.T) {
	s := readySession(5)

	t.Run("Previous at first page is a no-op", func(t *testing.T) {
		if s.Previous() {
			t.Error("Previous on page 1 must not request a render")
		}
		if s.CurrentPage != 1 {
			t.Errorf("Page moved to %d", s.CurrentPage)
		}
	})

	t.Run("GoToPage clamps above total", func(t *testing.T) {
		if !s.GoToPage(99) {
			t.Error("Jump to clamped last page should render")
		}
		if s.CurrentPage != 5 {
			t.Errorf("Page = %d, want 5", s.CurrentPage)
		}
	})

	t.Run("Next at last page is a no-op", func(t *testing.T) {
		if s.Next() {
			t.Error("Next on last page must not request a render")
		}
		if s.CurrentPage != 5 {
			t.Errorf("Page moved to %d", s.CurrentPage)
		}
	})

	t.Run("GoToPage clamps below one", func(t *testing.T) {
		s.GoToPage(-3)
		if s.CurrentPage != 1 {
			t.Errorf("Page = %d, want 1", s.CurrentPage)
		}
	})
}

func TestSession_ZoomClamping(t *testing.T) {
	s := readySession(3)

	for i := 0; i < 20; i++ {
		s.ZoomIn()
	}
	if s.Zoom != 3.0 {
		t.Errorf("Zoom = %v, want ceiling 3.0", s.Zoom)
	}
	if s.Fit != CustomZoom {
		t.Errorf("Manual zoom must switch fit to custom-zoom, got %s", s.Fit)
	}

	for i := 0; i < 30; i++ {
		s.ZoomOut()
	}
	if s.Zoom != 0.25 {
		t.Errorf("Zoom = %v, want floor 0.25", s.Zoom)
	}
}

func TestSession_EffectiveScale(t *testing.T) {
	s := readySession(3)
	s.CanvasW, s.CanvasH = 1920, 1080
	s.ContainerW, s.ContainerH = 960, 1080

	s.SetFitMode(FitWidth)
	if got := s.EffectiveScale(); got != 0.5 {
		t.Errorf("fit-width scale = %v, want 0.5", got)
	}

	s.SetFitMode(FitPage)
	// width ratio 0.5, height ratio 1.0 - the smaller wins
	if got := s.EffectiveScale(); got != 0.5 {
		t.Errorf("fit-page scale = %v, want 0.5", got)
	}

	s.SetFitMode(ActualSize)
	if got := s.EffectiveScale(); got != 1.0 {
		t.Errorf("actual-size scale = %v, want 1.0", got)
	}

	s.Zoom = 2.0
	s.SetFitMode(CustomZoom)
	if got := s.EffectiveScale(); got != 2.0 {
		t.Errorf("custom-zoom scale = %v, want 2.0", got)
	}

	// Resize recomputes named fit modes on the next read
	s.SetFitMode(FitWidth)
	s.Resize(1920, 500)
	if got := s.EffectiveScale(); got != 1.0 {
		t.Errorf("fit-width after resize = %v, want 1.0", got)
	}
}

func TestSession_StaleRenderDiscarded(t *testing.T) {
	s := readySession(10)

	s.GoToPage(2)
	stale := s.BeginRender()
	s.GoToPage(3)
	fresh := s.BeginRender()

	if s.FinishRender(stale, 2, "") {
		t.Error("Stale render token was applied")
	}
	if s.State != StateRendering {
		t.Errorf("Stale completion changed state to %s", s.State)
	}

	if !s.FinishRender(fresh, 3, "") {
		t.Error("Fresh render token was rejected")
	}
	if s.State != StateReady {
		t.Errorf("State = %s after fresh completion, want Ready", s.State)
	}
}

func TestSession_PageRenderErrorInline(t *testing.T) {
	s := readySession(4)

	s.GoToPage(2)
	token := s.BeginRender()
	s.FinishRender(token, 2, "page image unavailable")

	if s.State != StateReady {
		t.Errorf("Render error must stay inline, state = %s", s.State)
	}
	if s.PageErrors[2] != "page image unavailable" {
		t.Errorf("PageErrors[2] = %q", s.PageErrors[2])
	}

	// Navigation away and back still works, and a good render clears the error
	s.GoToPage(3)
	s.GoToPage(2)
	token = s.BeginRender()
	s.FinishRender(token, 2, "")
	if _, exists := s.PageErrors[2]; exists {
		t.Error("Successful render did not clear the page error")
	}
}

func TestSession_ErrorStateAndRetry(t *testing.T) {
	s := NewSession("sess-1", "deck-1", 0, 0)
	s.Fail("Deck not found or conversion incomplete")

	if s.State != StateError {
		t.Fatalf("State = %s, want Error", s.State)
	}

	// Everything but retry is inert in the Error state
	if s.GoToPage(2) {
		t.Error("Navigation must be a no-op in Error state")
	}
	s.ZoomIn()
	if s.Zoom != 1.0 {
		t.Error("Zoom must be a no-op in Error state")
	}

	s.Retry()
	if s.State != StateLoading {
		t.Errorf("Retry left state %s, want Loading", s.State)
	}
	if s.LastError != "" {
		t.Errorf("Retry kept stale error %q", s.LastError)
	}
}

func TestApply_PrintIsStateNeutral(t *testing.T) {
	s := readySession(3)
	s.GoToPage(2)
	page, state, zoom := s.CurrentPage, s.State, s.Zoom

	needsRender, err := Apply(&s, Command{Action: ActionPrint})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if needsRender {
		t.Error("Print must not request a re-render")
	}
	if s.CurrentPage != page || s.State != state || s.Zoom != zoom {
		t.Errorf("Print mutated the session: page=%d state=%s zoom=%v", s.CurrentPage, s.State, s.Zoom)
	}
}

func TestApply_UnknownAction(t *testing.T) {
	s := readySession(3)
	if _, err := Apply(&s, Command{Action: "teleport"}); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func TestApply_KeyCommands(t *testing.T) {
	s := readySession(3)

	needsRender, err := Apply(&s, Command{Action: ActionKey, Key: "ArrowRight"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !needsRender || s.CurrentPage != 2 {
		t.Errorf("ArrowRight: render=%v page=%d", needsRender, s.CurrentPage)
	}

	// Escape exits fullscreen but never enters it
	Apply(&s, Command{Action: ActionFullscreen})
	if !s.Fullscreen {
		t.Fatal("Fullscreen toggle failed")
	}
	Apply(&s, Command{Action: ActionKey, Key: "Escape"})
	if s.Fullscreen {
		t.Error("Escape did not exit fullscreen")
	}
	Apply(&s, Command{Action: ActionKey, Key: "Escape"})
	if s.Fullscreen {
		t.Error("Escape toggled fullscreen back on")
	}
}

func TestMapKey(t *testing.T) {
	cases := []struct {
		key  string
		want Action
	}{
		{"ArrowRight", ActionNext},
		{"PageDown", ActionNext},
		{"ArrowLeft", ActionPrevious},
		{"PageUp", ActionPrevious},
		{"+", ActionZoomIn},
		{"=", ActionZoomIn},
		{"-", ActionZoomOut},
		{"_", ActionZoomOut},
		{"f", ActionFullscreen},
		{"F11", ActionFullscreen},
		{"Escape", ActionEscape},
		{"q", ""},
	}
	for _, c := range cases {
		if got := MapKey(c.key, false); got != c.want {
			t.Errorf("MapKey(%q) = %q, want %q", c.key, got, c.want)
		}
	}

	// Shortcuts are suppressed inside text inputs
	if got := MapKey("ArrowRight", true); got != "" {
		t.Errorf("MapKey in text input = %q, want suppressed", got)
	}
}
