package scrollcam

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventQuit         EventType = iota // quit requested; the loop ends after this frame
	EventModeChanged                   // camera panning mode switched
	EventZoomChanged                   // zoom differs from the previous frame
	EventRecenter                      // a ScrollTo back onto the player started
	EventConfigReload                  // a new config was applied
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventModeChanged:
		return "mode-changed"
	case EventZoomChanged:
		return "zoom-changed"
	case EventRecenter:
		return "recenter"
	case EventConfigReload:
		return "config-reload"
	default:
		return "unknown"
	}
}

// SceneEvent carries the camera state at the moment the event fired.
type SceneEvent struct {
	Type   EventType
	Frame  uint64
	Mode   PanMode
	Offset Vec2
	Zoom   float64
}

// EventSink receives scene events. See package ecs for a donburi adapter.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// emit forwards an event to the sink, if one is set.
func (s *Scene) emit(t EventType) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(SceneEvent{
		Type:   t,
		Frame:  s.frame,
		Mode:   s.camera.Mode,
		Offset: s.camera.Offset,
		Zoom:   s.camera.Zoom,
	})
}
