package splat

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/line-splat/line-splat/internal/imaging"
	"github.com/line-splat/line-splat/internal/raster"
)

// DefaultLineCount is the number of lines drawn when none is configured.
const DefaultLineCount = 1_000_000

// Style selects the line placement strategy.
type Style int

const (
	StyleRandom Style = iota
	StyleSteered
	StyleEnergy
	StyleEdgeWeb
)

var styleNames = map[Style]string{
	StyleRandom:  "random",
	StyleSteered: "steered",
	StyleEnergy:  "energy",
	StyleEdgeWeb: "edgeweb",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps a style name (case-insensitive) to a Style.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid style %q: must be random, steered, energy, or edgeweb", name)
}

// Options configures a Run.
type Options struct {
	// Style selects how lines are placed. Default: StyleRandom.
	Style Style

	// LineCount is the number of lines to attempt. Ignored by StyleEdgeWeb,
	// which draws every matched edge pair exactly once.
	LineCount uint64

	// LinesPerPoint is how many partners each edge point keeps in
	// StyleEdgeWeb. Default: 1.
	LinesPerPoint int

	// Jitter adds a per-channel Gaussian color shift to the pens of
	// StyleRandom and StyleSteered lines.
	Jitter bool

	// Logger receives progress messages. nil disables them.
	Logger *log.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Style:         StyleRandom,
		LineCount:     DefaultLineCount,
		LinesPerPoint: DefaultLinesPerPoint,
	}
}

// Stats summarizes a Run.
type Stats struct {
	Requested uint64 `json:"requested"` // lines asked for (matched pairs for edgeweb)
	Drawn     uint64 `json:"drawn"`     // lines painted
	Skipped   uint64 `json:"skipped"`   // lines abandoned after maxAttempts
	Edges     int    `json:"edges"`     // edge pixels found (edgeweb only)
}

// Generator produces one line and the pen color to draw it with.
// ok is false when no acceptable line was found.
type Generator interface {
	Next(rng Source) (seg Segment, pen imaging.RGB, ok bool)
}

// NewGenerator returns the generator for a repeating style. StyleEdgeWeb is
// not a Generator; it is handled by Run directly.
func NewGenerator(style Style, src *imaging.PixelBuffer, field *imaging.GradientField, jitter bool) (Generator, error) {
	switch style {
	case StyleRandom:
		return &randomGenerator{src: src, jitter: jitter}, nil
	case StyleSteered:
		return &steeredGenerator{src: src, field: field, jitter: jitter}, nil
	case StyleEnergy:
		return &energyGenerator{src: src, field: field}, nil
	default:
		return nil, fmt.Errorf("style %s has no per-line generator", style)
	}
}

type randomGenerator struct {
	src    *imaging.PixelBuffer
	jitter bool
}

func (g *randomGenerator) Next(rng Source) (Segment, imaging.RGB, bool) {
	seg, ok := RandomLine(rng, g.src.Width, g.src.Height)
	if !ok {
		return Segment{}, imaging.RGB{}, false
	}
	pen := endpointPen(g.src, seg)
	if g.jitter {
		pen = imaging.ShiftColor(rng, pen)
	}
	return seg, pen, true
}

type steeredGenerator struct {
	src    *imaging.PixelBuffer
	field  *imaging.GradientField
	jitter bool
}

func (g *steeredGenerator) Next(rng Source) (Segment, imaging.RGB, bool) {
	seg, ok := SteeredLine(rng, g.field)
	if !ok {
		return Segment{}, imaging.RGB{}, false
	}
	pen := endpointPen(g.src, seg)
	if g.jitter {
		pen = imaging.ShiftColor(rng, pen)
	}
	return seg, pen, true
}

type energyGenerator struct {
	src   *imaging.PixelBuffer
	field *imaging.GradientField
}

func (g *energyGenerator) Next(rng Source) (Segment, imaging.RGB, bool) {
	center, seg, ok := EnergyLine(rng, g.field)
	if !ok {
		return Segment{}, imaging.RGB{}, false
	}
	pen := imaging.ShiftLightness(rng, imaging.ColorAt(g.src, center.X, center.Y))
	return seg, pen, true
}

// Run paints a stylized copy of src onto a new black canvas of the same size.
//
// The gradient field (and, for StyleEdgeWeb, the edge mask) is computed once
// up front. Lines are then drawn one after another in generation order, so a
// fixed rng seed always produces the same output.
func Run(src *imaging.PixelBuffer, opts Options, rng Source) (*imaging.PixelBuffer, Stats) {
	logf := func(format string, args ...any) {
		if opts.Logger != nil {
			opts.Logger.Printf(format, args...)
		}
	}

	out := imaging.NewPixelBuffer(src.Width, src.Height)
	painter := raster.NewPainter()

	start := time.Now()
	field := imaging.ComputeGradient(src)
	logf("gradient field %dx%d computed in %v", field.Width, field.Height, time.Since(start))

	var stats Stats

	if opts.Style == StyleEdgeWeb {
		start = time.Now()
		mask := imaging.SuppressEdges(field)
		stats.Edges = mask.Count()
		pairs := MatchEdgePairs(field, mask, opts.LinesPerPoint)
		stats.Requested = uint64(len(pairs))
		logf("edge web: %d edge pixels, %d pairs matched in %v", stats.Edges, len(pairs), time.Since(start))

		for _, seg := range pairs {
			pen := edgeWebPen(rng, src, seg)
			painter.SetPen(pen)
			painter.Line(out, seg.X1, seg.Y1, seg.X2, seg.Y2)
			stats.Drawn++
		}
		return out, stats
	}

	gen, err := NewGenerator(opts.Style, src, field, opts.Jitter)
	if err != nil {
		logf("%v", err)
		return out, stats
	}

	stats.Requested = opts.LineCount
	step := max(opts.LineCount/10, 1)
	start = time.Now()
	for i := uint64(0); i < opts.LineCount; i++ {
		seg, pen, ok := gen.Next(rng)
		if !ok {
			stats.Skipped++
			continue
		}
		painter.SetPen(pen)
		painter.Line(out, seg.X1, seg.Y1, seg.X2, seg.Y2)
		stats.Drawn++

		if (i+1)%step == 0 {
			logf("%s: %d/%d lines (%v)", opts.Style, i+1, opts.LineCount, time.Since(start))
		}
	}
	return out, stats
}
