// Package window provides a small windowing facade for visualizing geometry: primitive
// drawing, camera control, and user callbacks for drawing and input, all invoked on a
// single render goroutine.
//
// The facade does no rendering of its own. Drawing is delegated to a [Renderer];
// [Canvas] is an offscreen implementation that rasterizes frames into images.
package window

import (
	"fmt"
	"image/color"

	"github.com/golang/geo/r3"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	LeftButton MouseButton = iota
	MiddleButton
	RightButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case MiddleButton:
		return "middle"
	case RightButton:
		return "right"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MouseButtonEvent is the state change of a mouse button.
type MouseButtonEvent int

const (
	ButtonPressed MouseButtonEvent = iota
	ButtonReleased
)

func (e MouseButtonEvent) String() string {
	switch e {
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	default:
		return fmt.Sprintf("MouseButtonEvent(%d)", int(e))
	}
}

// CameraType selects the projection used by the camera.
type CameraType int

const (
	PerspectiveCamera CameraType = iota
	OrthographicCamera
)

// Renderer is the rendering library the window delegates to. Implementations need not
// be safe for concurrent use; [Object] serializes all calls.
type Renderer interface {
	DrawCylinder(base, top r3.Vector, radius float64, c color.Color)
	DrawSphere(center r3.Vector, radius float64, c color.Color)
	// DrawCube draws an axis-aligned cube with the given edge length.
	DrawCube(center r3.Vector, size float64, c color.Color)
	// DrawAxis draws the x, y and z axes from the origin.
	DrawAxis(length float64)
	Clear()
	SetCamera(eye, target r3.Vector, typ CameraType)
	EnableLighting()
	DisableLighting()
	Width() int
	Height() int
	// Present publishes the frame drawn since the last Clear.
	Present() error
	Close() error
}
