// Package motion describes scroll-linked transforms. Scroll progress is
// always passed in explicitly as a fraction in [0, 1]; the browser
// supplies it at runtime through a CSS scroll timeline, and the same
// tables are sampled here to produce the keyframes.
package motion

import (
	"fmt"
	"math"
	"strings"
)

// Range is a closed interval. From may be greater than To.
type Range struct {
	From, To float64
}

// Transform maps an input range linearly onto an output range.
type Transform struct {
	In  Range
	Out Range
}

// At returns the output for progress p. Inputs outside In are clamped.
func (t Transform) At(p float64) float64 {
	span := t.In.To - t.In.From
	if span == 0 {
		return t.Out.From
	}
	f := (p - t.In.From) / span
	f = math.Max(0, math.Min(1, f))
	return t.Out.From + f*(t.Out.To-t.Out.From)
}

// Layer is one animated element.
type Layer struct {
	Name      string // CSS class and keyframes name
	Property  string // translateY, scaleY
	Unit      string
	Transform Transform

	// Timeline is the CSS animation-timeline supplying progress, and
	// Range the optional animation-range within it.
	Timeline string
	Range    string
}

// AboutTimeline is the view timeline declared on the about section.
const AboutTimeline = "--about"

// Hero returns the two parallax background layers of the about section.
// Their progress runs from the section's top at the viewport top to the
// section's bottom leaving it.
func Hero() []Layer {
	unit := Range{0, 1}
	layer := func(name string, shift float64) Layer {
		return Layer{
			Name:      name,
			Property:  "translateY",
			Unit:      "px",
			Transform: Transform{In: unit, Out: Range{0, shift}},
			Timeline:  AboutTimeline,
			Range:     "exit",
		}
	}
	return []Layer{layer("hero-layer-1", -60), layer("hero-layer-2", -120)}
}

// Progress returns the page scroll progress bar.
func Progress() Layer {
	return Layer{
		Name:      "progress-bar",
		Property:  "scaleY",
		Transform: Transform{In: Range{0, 1}, Out: Range{0, 1}},
		Timeline:  "scroll(root)",
	}
}

// Keyframes renders layer as a CSS @keyframes rule sampled at steps+1
// evenly spaced progress values.
func Keyframes(layer Layer, steps int) string {
	if steps < 1 {
		steps = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", layer.Name)
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		fmt.Fprintf(&b, "  %s%% { transform: %s(%s%s); }\n",
			formatNumber(p*100), layer.Property, formatNumber(layer.Transform.At(p)), layer.Unit)
	}
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet renders the keyframes for every layer and binds each to its
// timeline.
func Stylesheet(layers []Layer, steps int) string {
	var b strings.Builder
	for _, layer := range layers {
		b.WriteString(Keyframes(layer, steps))
		fmt.Fprintf(&b, ".%s { animation: %s linear both; animation-timeline: %s;", layer.Name, layer.Name, layer.Timeline)
		if layer.Range != "" {
			fmt.Fprintf(&b, " animation-range: %s;", layer.Range)
		}
		b.WriteString(" }\n")
	}
	return b.String()
}

func formatNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalise -0
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
