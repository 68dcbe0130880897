package viewer

import "fmt"

type Action string

const (
	ActionNext       Action = "next"
	ActionPrevious   Action = "previous"
	ActionGoTo       Action = "goto"
	ActionZoomIn     Action = "zoom-in"
	ActionZoomOut    Action = "zoom-out"
	ActionSetFit     Action = "set-fit"
	ActionResize     Action = "resize"
	ActionDarkMode   Action = "dark-mode"
	ActionFullscreen Action = "fullscreen"
	ActionKey        Action = "key"
	ActionRetry      Action = "retry"
	//Escape only ever exits fullscreen; it never toggles it on
	ActionEscape Action = "escape"
	//print resolves to the current page's fixed-size raster; the state
	//response carries its image URL and nothing server-side changes
	ActionPrint Action = "print"
)

// Command is one viewer control-surface operation.
type Command struct {
	Action      Action  `json:"action"`
	Page        int     `json:"page,omitempty"`
	Mode        FitMode `json:"mode,omitempty"`
	Key         string  `json:"key,omitempty"`
	InTextInput bool    `json:"in_text_input,omitempty"`
	ContainerW  int     `json:"container_w,omitempty"`
	ContainerH  int     `json:"container_h,omitempty"`
}

// Apply mutates the session. The returned bool reports whether the current
// page's visual needs re-rendering.
func Apply(s *Session, cmd Command) (bool, error) {
	switch cmd.Action {
	case ActionNext:
		return s.Next(), nil
	case ActionPrevious:
		return s.Previous(), nil
	case ActionGoTo:
		return s.GoToPage(cmd.Page), nil
	case ActionZoomIn:
		s.ZoomIn()
		return false, nil
	case ActionZoomOut:
		s.ZoomOut()
		return false, nil
	case ActionSetFit:
		s.SetFitMode(cmd.Mode)
		return false, nil
	case ActionResize:
		s.Resize(cmd.ContainerW, cmd.ContainerH)
		return false, nil
	case ActionDarkMode:
		s.ToggleDarkMode()
		return false, nil
	case ActionFullscreen:
		s.ToggleFullscreen()
		return false, nil
	case ActionRetry:
		s.Retry()
		return false, nil
	case ActionEscape:
		s.ExitFullscreen()
		return false, nil
	case ActionPrint:
		return false, nil
	case ActionKey:
		mapped := MapKey(cmd.Key, cmd.InTextInput)
		if mapped == "" {
			return false, nil
		}
		return Apply(s, Command{Action: mapped})
	default:
		return false, fmt.Errorf("unknown viewer action %q", cmd.Action)
	}
}

// MapKey translates keyboard shortcuts to actions. Shortcuts are suppressed
// while focus is inside a text input.
func MapKey(key string, inTextInput bool) Action {
	if inTextInput {
		return ""
	}
	switch key {
	case "ArrowRight", "PageDown":
		return ActionNext
	case "ArrowLeft", "PageUp":
		return ActionPrevious
	case "+", "=":
		return ActionZoomIn
	case "-", "_":
		return ActionZoomOut
	case "f", "F11":
		return ActionFullscreen
	case "Escape":
		return ActionEscape
	default:
		return ""
	}
}
