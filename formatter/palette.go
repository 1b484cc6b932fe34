package formatter

import (
	"strconv"
	"sync"

	"github.com/philipp01105/simplylog/core"
)

// Palette maps message levels to display colours. Colours are plain
// strings, normally "#RGB" or "#RRGGBB" hex values.
type Palette struct {
	mu     sync.RWMutex
	colors map[core.Level]string
}

// DefaultPalette returns a palette with the stock colours:
// error=red, info=black, warn=yellow, debug=green, trace=blue.
func DefaultPalette() *Palette {
	return &Palette{
		colors: map[core.Level]string{
			core.ErrorLevel: "#F00",
			core.InfoLevel:  "#000",
			core.WarnLevel:  "#FF0",
			core.DebugLevel: "#0F0",
			core.TraceLevel: "#00F",
		},
	}
}

// NewPalette returns an empty palette; every level renders uncoloured
// until a colour is set.
func NewPalette() *Palette {
	return &Palette{colors: make(map[core.Level]string)}
}

// ResolveKey accepts a case-insensitive level name or a numeric rank.
func ResolveKey(key string) (core.Level, bool) {
	if rank, err := strconv.Atoi(key); err == nil {
		return core.LevelFromRank(rank)
	}
	l, err := core.ParseLevel(key)
	if err != nil || !l.Valid() {
		return 0, false
	}
	return l, true
}

// Color returns the colour for a level name or numeric rank. It reports
// false for anything that is not one of the five message levels.
func (p *Palette) Color(key string) (string, bool) {
	l, ok := ResolveKey(key)
	if !ok {
		return "", false
	}
	return p.ColorOf(l)
}

// ColorOf returns the colour registered for l.
func (p *Palette) ColorOf(l core.Level) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.colors[l]
	return c, ok
}

// SetColor replaces the colour of a level name or numeric rank and returns
// the colour now in effect. Values shorter than three characters are
// ignored, and a missing leading '#' is added. Unknown levels report false.
func (p *Palette) SetColor(key, color string) (string, bool) {
	l, ok := ResolveKey(key)
	if !ok {
		return "", false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(color) >= 3 {
		if color[0] != '#' {
			color = "#" + color
		}
		p.colors[l] = color
	}
	c, ok := p.colors[l]
	return c, ok
}

// Snapshot returns a copy of the palette keyed by level name.
func (p *Palette) Snapshot() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.colors))
	for l, c := range p.colors {
		out[l.String()] = c
	}
	return out
}
