// Package debug provides a keyboard-driven tweak panel for live scene parameters.
package debug

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/common"
)

// HueStep is the hue rotation, in turns, applied per Adjust step on a color control.
const HueStep = 1.0 / 360

// Panel holds validated bindings and a selection cursor.
// Values are written through the bindings immediately, so changes show on the next frame.
type Panel struct {
	mu     *sync.Mutex
	logger *slog.Logger

	bindings []Binding
	index    map[string]int
	initial  []any
	selected int
	visible  bool
}

// NewPanel validates the bindings and builds a panel over them, in order.
// The current value of each binding is remembered for Reset.
//
// Parameters:
//   - bindings: Number and Color bindings with unique labels
//
// Returns:
//   - *Panel: the panel
//   - error: ErrInvalidBinding describing the first bad binding
func NewPanel(bindings ...Binding) (*Panel, error) {
	p := &Panel{
		mu:      &sync.Mutex{},
		logger:  slog.Default(),
		index:   make(map[string]int, len(bindings)),
		visible: true,
	}
	for _, b := range bindings {
		if b == nil {
			return nil, fmt.Errorf("%w: nil binding", ErrInvalidBinding)
		}
		if err := b.validate(); err != nil {
			return nil, err
		}
		if _, dup := p.index[b.label()]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidBinding, b.label())
		}
		p.index[b.label()] = len(p.bindings)
		p.bindings = append(p.bindings, b)
		switch v := b.(type) {
		case Number:
			p.initial = append(p.initial, v.Get())
		case Color:
			p.initial = append(p.initial, v.Get())
		}
	}
	return p, nil
}

// SetLogger replaces the logger used to report changes. Nil is ignored.
func (p *Panel) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = logger
}

// Len returns the number of controls.
func (p *Panel) Len() int {
	return len(p.bindings)
}

// Controls returns a descriptor for every control in order, with current values.
func (p *Panel) Controls() []Control {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Control, 0, len(p.bindings))
	for _, b := range p.bindings {
		out = append(out, describe(b))
	}
	return out
}

func describe(b Binding) Control {
	switch v := b.(type) {
	case Number:
		return Control{Label: v.Label, Kind: KindNumber, Min: v.Min, Max: v.Max, Step: v.Step, Value: v.Get()}
	case Color:
		return Control{Label: v.Label, Kind: KindColor, Color: v.Get()}
	}
	return Control{}
}

// SetNumber writes a number control after clamping and snapping.
//
// Parameters:
//   - label: the control label
//   - v: the requested value
//
// Returns:
//   - float64: the value actually applied
//   - error: ErrUnknownControl, ErrKindMismatch, or an error for NaN input
func (p *Panel) SetNumber(label string, v float64) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, err := p.number(label)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("debug control %s: value is NaN", label)
	}
	return p.applyNumber(n, v), nil
}

// SetColor writes a color control.
//
// Parameters:
//   - label: the control label
//   - c: the color
//
// Returns:
//   - error: ErrUnknownControl or ErrKindMismatch
func (p *Panel) SetColor(label string, c common.Color) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	col, err := p.color(label)
	if err != nil {
		return err
	}
	p.applyColor(col, c)
	return nil
}

// SetColorHex writes a color control from a "#rrggbb" string.
//
// Parameters:
//   - label: the control label
//   - hex: the color string
//
// Returns:
//   - error: a parse error, ErrUnknownControl or ErrKindMismatch
func (p *Panel) SetColorHex(label, hex string) error {
	c, err := common.ParseHexColor(hex)
	if err != nil {
		return fmt.Errorf("debug control %s: %w", label, err)
	}
	return p.SetColor(label, c)
}

// Select moves the cursor to control i. Out-of-range indexes are ignored.
func (p *Panel) Select(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i >= 0 && i < len(p.bindings) {
		p.selected = i
	}
}

// Selected returns the cursor index.
func (p *Panel) Selected() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// Next moves the cursor down, wrapping to the first control.
func (p *Panel) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.bindings); n > 0 {
		p.selected = (p.selected + 1) % n
	}
}

// Prev moves the cursor up, wrapping to the last control.
func (p *Panel) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.bindings); n > 0 {
		p.selected = (p.selected - 1 + n) % n
	}
}

// Adjust moves the selected control by whole steps. Colors rotate their hue by HueStep per step.
//
// Parameters:
//   - steps: signed step count
func (p *Panel) Adjust(steps int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bindings) == 0 || steps == 0 {
		return
	}
	switch b := p.bindings[p.selected].(type) {
	case Number:
		p.applyNumber(b, b.Get()+float64(steps)*b.Step)
	case Color:
		p.applyColor(b, b.Get().OffsetHue(float32(steps)*HueStep))
	}
}

// Reset restores the selected control to its value when the panel was built.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bindings) == 0 {
		return
	}
	switch b := p.bindings[p.selected].(type) {
	case Number:
		p.applyNumber(b, p.initial[p.selected].(float64))
	case Color:
		p.applyColor(b, p.initial[p.selected].(common.Color))
	}
}

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Toggle flips visibility. Hidden panels ignore navigation and adjustment keys.
func (p *Panel) Toggle() {
	p.mu.Lock()
	p.visible = !p.visible
	visible := p.visible
	p.mu.Unlock()
	p.logger.Debug("debug panel toggled", "visible", visible)
}

// HandleKey maps a key code to a panel action.
//   - Up/Down and Tab move the cursor
//   - Left/Right adjust by one step, PageDown/PageUp by ten
//   - R resets the selected control, D toggles visibility
//
// Parameters:
//   - key: a common.Key* code
//
// Returns:
//   - bool: true if the key was consumed
func (p *Panel) HandleKey(key int) bool {
	if key == common.KeyD {
		p.Toggle()
		return true
	}
	if !p.Visible() {
		return false
	}
	switch key {
	case common.KeyUp:
		p.Prev()
	case common.KeyDown, common.KeyTab:
		p.Next()
	case common.KeyLeft:
		p.Adjust(-1)
	case common.KeyRight:
		p.Adjust(1)
	case common.KeyPageDown:
		p.Adjust(-10)
	case common.KeyPageUp:
		p.Adjust(10)
	case common.KeyR:
		p.Reset()
	default:
		return false
	}
	return true
}

// String renders the panel as text, one control per line, marking the selection with '>'.
func (p *Panel) String() string {
	controls := p.Controls()
	selected := p.Selected()

	width := 0
	for _, c := range controls {
		width = max(width, len(c.Label))
	}

	var sb strings.Builder
	for i, c := range controls {
		marker := " "
		if i == selected {
			marker = ">"
		}
		switch c.Kind {
		case KindNumber:
			fmt.Fprintf(&sb, "%s %-*s %s [%g, %g]\n", marker, width, c.Label, formatStep(c.Value, c.Step), c.Min, c.Max)
		case KindColor:
			fmt.Fprintf(&sb, "%s %-*s %s\n", marker, width, c.Label, c.Color)
		}
	}
	return sb.String()
}

// formatStep prints v with as many decimals as the step needs.
func formatStep(v, step float64) string {
	decimals := int(math.Max(0, math.Ceil(-math.Log10(step))))
	return fmt.Sprintf("%.*f", decimals, v)
}

func (p *Panel) number(label string) (Number, error) {
	i, ok := p.index[label]
	if !ok {
		return Number{}, fmt.Errorf("%w: %q", ErrUnknownControl, label)
	}
	n, ok := p.bindings[i].(Number)
	if !ok {
		return Number{}, fmt.Errorf("%w: %q is a %s", ErrKindMismatch, label, p.bindings[i].kind())
	}
	return n, nil
}

func (p *Panel) color(label string) (Color, error) {
	i, ok := p.index[label]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownControl, label)
	}
	c, ok := p.bindings[i].(Color)
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is a %s", ErrKindMismatch, label, p.bindings[i].kind())
	}
	return c, nil
}

func (p *Panel) applyNumber(n Number, v float64) float64 {
	v = n.constrain(v)
	n.Set(v)
	p.logger.Debug("debug control changed", "control", n.Label, "value", v)
	return v
}

func (p *Panel) applyColor(c Color, v common.Color) {
	c.Set(v)
	p.logger.Debug("debug control changed", "control", c.Label, "value", v.String())
}
