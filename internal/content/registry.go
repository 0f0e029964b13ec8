// Package content provides a registry of pluggable game content.
// Contents register themselves in init() functions, allowing the host
// to discover and instantiate them without hardcoded dependencies.
package content

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/become-pm/internal/config"
	"github.com/vovakirdan/become-pm/internal/engine"
)

// Scorer is the part of the session state content may touch.
// *gamestate.State implements it.
type Scorer interface {
	AddScore(points float64)
	Score() float64
	SetLevel(level int)
	Level() int
	HighScore() float64
}

// Env is what the host hands to a content when it creates it.
type Env struct {
	Config      engine.Config
	PixelRatio  float64
	Score       Scorer
	Progression *config.Progression
	FPS         func() int // Measured frame rate, usually Engine.FPS
}

// LogicalSize returns the drawing area in context coordinates. The context
// is scaled by the pixel ratio, so content drawing in these units fills the
// surface exactly.
func (e Env) LogicalSize() (w, h float64) {
	ratio := e.PixelRatio
	if ratio < 1 {
		ratio = 1
	}
	return float64(e.Config.Width) / ratio, float64(e.Config.Height) / ratio
}

// Content is the game logic plugged into the engine.
// It contains no host or terminal concerns; the engine drives it through
// the callback pair it returns.
type Content interface {
	// ID returns a unique identifier (e.g., "square").
	// Used for CLI flags and session history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Callbacks returns the update/render pair for the engine.
	Callbacks() engine.Callbacks
}

// Info contains metadata about a registered content.
type Info struct {
	ID    string
	Title string
}

// Factory creates a content bound to env.
// It must not use env beyond storing it, since Register calls it with a
// zero Env to read the title.
type Factory func(env Env) Content

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a content factory to the registry.
// Typically called from an init() function.
// Panics if a content with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("content: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Env{}).Title()
}

// List returns information about all registered contents, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a content by its ID.
// Returns an error if the ID is not registered.
func Create(id string, env Env) (Content, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("content: unknown content %q", id)
	}
	return f(env), nil
}

// Exists checks if a content with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
