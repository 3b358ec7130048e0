package window

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type eventKind int

const (
	keyEvent eventKind = iota
	dragEvent
	buttonEvent
)

type event struct {
	kind   eventKind
	key    byte
	button MouseButton
	state  MouseButtonEvent
	x, y   int
}

// Object is a window that runs a drawing function and input callbacks on a dedicated
// render goroutine. The goroutine starts in New and runs until Exit.
//
// The drawing primitives may be called from any goroutine, but are normally called from
// the drawing function. Callbacks may call any method except Exit and WaitKeyPressed.
type Object struct {
	cfg    Config
	logger golog.Logger
	clock  clock.Clock

	// rmu serializes calls into the renderer.
	rmu sync.Mutex
	r   Renderer

	drawFn   Guarded[func(*Object)]
	keyFn    Guarded[func(key byte, x, y int)]
	dragFn   Guarded[func(b MouseButton, x, y int) bool]
	buttonFn Guarded[func(b MouseButton, e MouseButtonEvent, x, y int)]

	// pending is unbounded so that posting input never blocks, not even from a
	// callback running on the render goroutine.
	evmu    sync.Mutex
	pending []event
	wake    chan struct{}

	redraw     chan struct{}
	fpsBits    atomic.Uint64
	fpsChanged chan struct{}
	keys       chan byte

	frames atomic.Uint64

	exitOnce sync.Once
	exitErr  error
	quit     chan struct{}
	done     chan struct{}
}

// Option configures an Object.
type Option func(*Object)

// WithClock makes the Object pace frames and wait timeouts with c.
func WithClock(c clock.Clock) Option {
	return func(o *Object) { o.clock = c }
}

// New creates a window drawing through r and starts its render goroutine. A nil logger
// discards all logs.
func New(r Renderer, cfg Config, logger golog.Logger, opts ...Option) (*Object, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid window config")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	o := &Object{
		cfg:    cfg,
		logger: logger,
		clock:  clock.New(),
		r:      r,
		wake:       make(chan struct{}, 1),
		redraw:     make(chan struct{}, 1),
		fpsChanged: make(chan struct{}, 1),
		keys:       make(chan byte, 1),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	o.fpsBits.Store(math.Float64bits(cfg.MaxFPS))
	for _, opt := range opts {
		opt(o)
	}
	logger.Debugw("starting render loop", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "fps", cfg.MaxFPS)
	go o.run()
	return o, nil
}

// SetDrawingFunction sets the function that draws each frame. The window is cleared
// before it runs. A nil function removes the current one.
func (o *Object) SetDrawingFunction(fn func(*Object)) {
	if fn == nil {
		o.drawFn.Clear()
		return
	}
	o.drawFn.Set(fn)
}

// SetKeyboardInputFunction sets the function called with each key press and the mouse
// position at the time. A nil function removes the current one.
func (o *Object) SetKeyboardInputFunction(fn func(key byte, x, y int)) {
	if fn == nil {
		o.keyFn.Clear()
		return
	}
	o.keyFn.Set(fn)
}

// SetMousePressedMovementFunction sets the function called when the mouse moves with
// a button held. If it returns true, the window is redrawn. A nil function removes the
// current one.
func (o *Object) SetMousePressedMovementFunction(fn func(b MouseButton, x, y int) bool) {
	if fn == nil {
		o.dragFn.Clear()
		return
	}
	o.dragFn.Set(fn)
}

// SetMousePressEvent sets the function called when a mouse button is pressed or
// released. A nil function removes the current one.
func (o *Object) SetMousePressEvent(fn func(b MouseButton, e MouseButtonEvent, x, y int)) {
	if fn == nil {
		o.buttonFn.Clear()
		return
	}
	o.buttonFn.Set(fn)
}

// PressKey delivers a key press to the window. Like MouseDrag and MouseButtonChange it
// queues the event without waiting for it to be handled.
func (o *Object) PressKey(key byte, x, y int) {
	o.post(event{kind: keyEvent, key: key, x: x, y: y})
}

// MouseDrag delivers a mouse movement with button b held.
func (o *Object) MouseDrag(b MouseButton, x, y int) {
	o.post(event{kind: dragEvent, button: b, x: x, y: y})
}

// MouseButtonChange delivers a mouse button press or release.
func (o *Object) MouseButtonChange(b MouseButton, e MouseButtonEvent, x, y int) {
	o.post(event{kind: buttonEvent, button: b, state: e, x: x, y: y})
}

func (o *Object) post(ev event) {
	select {
	case <-o.quit:
		return
	default:
	}
	o.evmu.Lock()
	o.pending = append(o.pending, ev)
	o.evmu.Unlock()
	select {
	case o.wake <- struct{}{}:
	default:
	}
}

func (o *Object) takeEvents() []event {
	o.evmu.Lock()
	defer o.evmu.Unlock()
	evs := o.pending
	o.pending = nil
	return evs
}

// WaitKeyPressed blocks until a key is pressed or timeout elapses, returning the key and
// whether one was pressed. A timeout of zero waits indefinitely. A press that happened
// before the call and has not been waited for counts; if several did, the latest wins.
// WaitKeyPressed returns early if the window exits.
func (o *Object) WaitKeyPressed(timeout time.Duration) (byte, bool) {
	var expired <-chan time.Time
	if timeout > 0 {
		t := o.clock.Timer(timeout)
		defer t.Stop()
		expired = t.C
	}
	select {
	case key := <-o.keys:
		return key, true
	case <-expired:
		return 0, false
	case <-o.done:
		return 0, false
	}
}

// ForceDisplay requests that a frame be drawn as soon as possible.
func (o *Object) ForceDisplay() {
	select {
	case o.redraw <- struct{}{}:
	default:
	}
}

// SetMaxFPS changes how often frames are drawn. Zero disables periodic redraws. It
// does not wait for the render goroutine and may be called from callbacks.
func (o *Object) SetMaxFPS(fps float64) {
	if !(fps > 0) {
		fps = 0
	}
	o.fpsBits.Store(math.Float64bits(fps))
	select {
	case o.fpsChanged <- struct{}{}:
	default:
	}
}

// MaxFPS returns the current frame rate limit.
func (o *Object) MaxFPS() float64 {
	return math.Float64frombits(o.fpsBits.Load())
}

// Frames returns the number of frames drawn so far.
func (o *Object) Frames() uint64 {
	return o.frames.Load()
}

// Usage describes the window and how it reacts to input.
func (o *Object) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%dx%d", o.cfg.Title, o.WindowWidth(), o.WindowHeight())
	if fps := o.MaxFPS(); fps > 0 {
		fmt.Fprintf(&b, ", redrawn at up to %g fps)\n", fps)
	} else {
		b.WriteString(", redrawn on demand)\n")
	}
	for _, binding := range usageBindings {
		fmt.Fprintf(&b, "  %-14s %s\n", binding[0], binding[1])
	}
	return b.String()
}

var usageBindings = [][2]string{
	{"key press", "calls the keyboard function with the key and mouse position, and wakes WaitKeyPressed"},
	{"drag", "calls the mouse movement function; the window is redrawn if it returns true"},
	{"button change", "calls the mouse button function on press and release"},
}

func (o *Object) WindowWidth() int {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	return o.r.Width()
}

func (o *Object) WindowHeight() int {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	return o.r.Height()
}

func (o *Object) DrawCylinder(base, top r3.Vector, radius float64, c color.Color) {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.DrawCylinder(base, top, radius, c)
}

func (o *Object) DrawSphere(center r3.Vector, radius float64, c color.Color) {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.DrawSphere(center, radius, c)
}

func (o *Object) DrawCube(center r3.Vector, size float64, c color.Color) {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.DrawCube(center, size, c)
}

func (o *Object) DrawAxis(length float64) {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.DrawAxis(length)
}

func (o *Object) Clear() {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.Clear()
}

func (o *Object) SetCamera(eye, target r3.Vector, typ CameraType) {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.SetCamera(eye, target, typ)
}

func (o *Object) EnableLighting() {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.EnableLighting()
}

func (o *Object) DisableLighting() {
	o.rmu.Lock()
	defer o.rmu.Unlock()
	o.r.DisableLighting()
}

// Exit stops the render goroutine, waits for it to return and closes the renderer.
// Calling Exit more than once returns the result of the first call. Exit must not be
// called from a callback, as it waits for the callback's own goroutine.
func (o *Object) Exit() error {
	o.exitOnce.Do(func() {
		close(o.quit)
		<-o.done
		o.rmu.Lock()
		defer o.rmu.Unlock()
		o.exitErr = errors.Wrap(o.r.Close(), "closing renderer")
		o.logger.Debugw("render loop stopped", "frames", o.Frames())
	})
	return o.exitErr
}

// pacer owns the ticker of the render goroutine.
type pacer struct {
	clock  clock.Clock
	fps    float64
	ticker *clock.Ticker
}

// reset replaces the ticker with one running at fps, or none if fps is zero.
func (p *pacer) reset(fps float64) <-chan time.Time {
	p.stop()
	p.fps = fps
	if fps <= 0 {
		return nil
	}
	p.ticker = p.clock.Ticker(time.Duration(float64(time.Second) / fps))
	return p.ticker.C
}

func (p *pacer) stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
}

func (o *Object) run() {
	defer close(o.done)

	p := &pacer{clock: o.clock}
	tick := p.reset(o.MaxFPS())
	defer p.stop()

	for {
		select {
		case <-o.quit:
			return
		case <-o.fpsChanged:
			tick = p.reset(o.MaxFPS())
		case <-o.wake:
			for _, ev := range o.takeEvents() {
				o.dispatch(ev)
			}
		case <-o.redraw:
			o.frame()
		case <-tick:
			// A tick from before SetMaxFPS returned must not draw at the old rate.
			if fps := o.MaxFPS(); fps != p.fps {
				tick = p.reset(fps)
				continue
			}
			o.frame()
		}
	}
}

func (o *Object) frame() {
	o.Clear()
	o.protect("drawing function", func() {
		o.drawFn.Call(func(fn func(*Object)) { fn(o) })
	})
	o.rmu.Lock()
	err := o.r.Present()
	o.rmu.Unlock()
	if err != nil {
		o.logger.Errorw("presenting frame failed", "error", err)
		return
	}
	o.frames.Add(1)
}

func (o *Object) dispatch(ev event) {
	switch ev.kind {
	case keyEvent:
		o.protect("keyboard function", func() {
			o.keyFn.Call(func(fn func(byte, int, int)) { fn(ev.key, ev.x, ev.y) })
		})
		o.notifyKey(ev.key)
	case dragEvent:
		var redraw bool
		o.protect("mouse movement function", func() {
			o.dragFn.Call(func(fn func(MouseButton, int, int) bool) { redraw = fn(ev.button, ev.x, ev.y) })
		})
		if redraw {
			o.ForceDisplay()
		}
	case buttonEvent:
		o.protect("mouse button function", func() {
			o.buttonFn.Call(func(fn func(MouseButton, MouseButtonEvent, int, int)) { fn(ev.button, ev.state, ev.x, ev.y) })
		})
	}
}

// notifyKey records key for WaitKeyPressed, replacing any press nobody waited for.
func (o *Object) notifyKey(key byte) {
	for {
		select {
		case o.keys <- key:
			return
		default:
		}
		select {
		case <-o.keys:
		default:
		}
	}
}

// protect runs fn, logging and discarding any panic so that the render loop survives
// faulty callbacks.
func (o *Object) protect(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Errorw("callback panicked", "callback", what, "panic", r)
		}
	}()
	fn()
}
