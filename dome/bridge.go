package dome

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Command is an asynchronous request to the dome controller. Payloads are
// JSON-encodable wire structures.
type Command struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Payload interface{} `json:"payload,omitempty"`
}

type Result struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Data   string `json:"data,omitempty"`
}

// Bridge sends commands to an external dome controller. Implementations
// must honor ctx cancellation; they may fail freely, the Adapter degrades
// to local simulation.
type Bridge interface {
	SendCommand(ctx context.Context, cmd Command) (Result, error)
}

// simulatedCommandCap bounds the loopback record. Interactive sessions
// forward a command per view change, up to the render tick rate, so an
// unbounded record would grow for as long as the viewer runs.
const simulatedCommandCap = 256

// Simulated is the loopback bridge used when no dome hardware is present.
// Commands are recorded and acknowledged without side effects, keeping the
// viewer fully interactive standalone. Only the most recent
// simulatedCommandCap commands are retained.
type Simulated struct {
	mu       sync.Mutex
	commands []Command
}

func (s *Simulated) SendCommand(_ context.Context, cmd Command) (Result, error) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	if len(s.commands) > simulatedCommandCap {
		s.commands = s.commands[len(s.commands)-simulatedCommandCap:]
	}
	s.mu.Unlock()
	return Result{ID: cmd.ID, Status: "simulated"}, nil
}

// Commands returns a copy of the retained record, oldest first.
func (s *Simulated) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Metadata is the equirectangular image metadata wire format.
type Metadata struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	FieldOfView      float64 `json:"fieldOfView"`
	Projection       string  `json:"projection"`
	OptimizedForDome bool    `json:"optimizedForDome"`
}

type ProjectionSettings struct {
	DomeRadius     float64 `json:"domeRadius"`
	ProjectorCount int     `json:"projectorCount"`
	BlendOverlap   float64 `json:"blendOverlap"`
}

// DefaultCommandTimeout bounds a bridge command before the adapter falls
// back to the simulated path.
const DefaultCommandTimeout = 2 * time.Second

// Adapter bridges the viewer to a dome controller. It owns the local
// navigation state and event bus, and forwards every operation to the
// injected Bridge; command failures and timeouts degrade to the simulated
// loopback so the viewer never depends on the dome being reachable.
type Adapter struct {
	bridge  Bridge
	sim     *Simulated
	bus     *Bus
	nav     *NavigationState
	timeout time.Duration

	mu   sync.Mutex
	view Coordinates
}

type AdapterOption func(*Adapter)

func WithTimeout(d time.Duration) AdapterOption {
	return func(a *Adapter) { a.timeout = d }
}

// NewAdapter wraps the given bridge. A nil bridge selects the simulated
// loopback; callers behave identically either way.
func NewAdapter(b Bridge, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		sim:     &Simulated{},
		bus:     NewBus(),
		nav:     NewNavigationState(),
		timeout: DefaultCommandTimeout,
	}
	a.bridge = b
	if a.bridge == nil {
		a.bridge = a.sim
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Adapter) Events() *Bus                 { return a.bus }
func (a *Adapter) Navigation() *NavigationState { return a.nav }

func (a *Adapter) View() Coordinates {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// SendCommand issues a command and waits for its result, bounded by the
// configured timeout. It never reports an error: an unreachable or failing
// bridge falls back to the local no-op simulation.
func (a *Adapter) SendCommand(name string, payload interface{}) Result {
	cmd := Command{ID: uuid.NewString(), Name: name, Payload: payload}
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	res, err := a.bridge.SendCommand(ctx, cmd)
	if err != nil {
		res, _ = a.sim.SendCommand(context.Background(), cmd)
	}
	return res
}

// forward sends without waiting so callers on the render loop never block.
func (a *Adapter) forward(name string, payload interface{}) {
	go a.SendCommand(name, payload)
}

// UpdateView records the orientation and forwards it. Values are wrapped
// and clamped, so reapplying the same coordinates is idempotent.
func (a *Adapter) UpdateView(c Coordinates) {
	c.Azimuth = WrapAzimuth(c.Azimuth)
	c.Elevation = ClampElevation(c.Elevation)
	a.mu.Lock()
	a.view = c
	a.mu.Unlock()
	a.forward("updateView", c)
}

func (a *Adapter) NavigateToProject(id string) error {
	if err := a.nav.SelectProject(id); err != nil {
		return err
	}
	a.forward("navigateToProject", map[string]string{"projectId": id})
	return nil
}

func (a *Adapter) NavigateToMap() error {
	if err := a.nav.Back(); err != nil {
		return err
	}
	a.forward("navigateToMap", nil)
	return nil
}

func (a *Adapter) EnterImmersiveMode(projectID string) error {
	if err := a.nav.EnterImmersive(projectID); err != nil {
		return err
	}
	a.forward("enterImmersiveMode", map[string]string{"projectId": projectID})
	return nil
}

func (a *Adapter) ExitImmersiveMode() error {
	if err := a.nav.ExitImmersive(); err != nil {
		return err
	}
	a.forward("exitImmersiveMode", nil)
	return nil
}

func (a *Adapter) RenderEquirectangular(url string, meta Metadata) {
	a.forward("renderEquirectangular", map[string]interface{}{
		"url":      url,
		"metadata": meta,
	})
}

func (a *Adapter) SetProjection(s ProjectionSettings) {
	a.forward("setProjection", s)
}

func (a *Adapter) EnableInteraction(enabled bool) {
	a.forward("enableInteraction", map[string]bool{"enabled": enabled})
}

func (a *Adapter) CalibrateInput() {
	a.forward("calibrateInput", nil)
}

// HandleEvent publishes an inbound controller event to local subscribers.
func (a *Adapter) HandleEvent(e Event) {
	a.bus.Publish(e)
}
