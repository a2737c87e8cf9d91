// Package render draws search frames for the terminal: a bar chart coloured
// by each index's role, a legend, the statistics panel and the step log.
package render

import (
	"fmt"
	"strings"

	"bsviz/internal/search"
	"bsviz/internal/steplog"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Role is how an index is drawn in a frame.
type Role int

const (
	RoleInRange Role = iota
	RoleEliminated
	RoleMid
	RoleFound
)

func (r Role) String() string {
	switch r {
	case RoleInRange:
		return "In Search Range"
	case RoleEliminated:
		return "Eliminated"
	case RoleMid:
		return "Current Middle"
	case RoleFound:
		return "Target Found"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// RoleOf returns the role of index i in frame f.
func RoleOf(f steplog.Frame, i int) Role {
	switch {
	case f.Status == steplog.Found && i == f.Mid():
		return RoleFound
	case f.HasMid() && i == f.Mid():
		return RoleMid
	case !f.InRange(i):
		return RoleEliminated
	default:
		return RoleInRange
	}
}

// Roles returns the role of every index in the frame.
func Roles(f steplog.Frame) []Role {
	out := make([]Role, f.N)
	for i := range out {
		out[i] = RoleOf(f, i)
	}
	return out
}

// Palette maps roles to colours.
type Palette struct {
	InRange    lipgloss.Color
	Eliminated lipgloss.Color
	Mid        lipgloss.Color
	Found      lipgloss.Color
	Label      lipgloss.Color
}

// DefaultPalette is navy / grey / yellow / green.
func DefaultPalette() Palette {
	return Palette{
		InRange:    lipgloss.Color("#1f3a93"),
		Eliminated: lipgloss.Color("#d3d3d3"),
		Mid:        lipgloss.Color("#ffd700"),
		Found:      lipgloss.Color("#32cd32"),
		Label:      lipgloss.Color("#808080"),
	}
}

// DarkPalette lifts the in-range colour so it stays visible on dark terminals.
func DarkPalette() Palette {
	p := DefaultPalette()
	p.InRange = lipgloss.Color("#5c7cfa")
	p.Eliminated = lipgloss.Color("#4a4a4a")
	return p
}

func (p Palette) color(r Role) lipgloss.Color {
	switch r {
	case RoleEliminated:
		return p.Eliminated
	case RoleMid:
		return p.Mid
	case RoleFound:
		return p.Found
	default:
		return p.InRange
	}
}

// Renderer turns frames into terminal text.
type Renderer struct {
	palette  Palette
	height   int
	markdown *glamour.TermRenderer
}

// Options configures a Renderer.
type Options struct {
	Palette Palette
	// Height is the tallest bar in rows.
	Height int
	// MarkdownStyle is a glamour standard style name; empty selects auto.
	MarkdownStyle string
	WordWrap      int
}

// New creates a renderer. If the markdown renderer cannot be built the
// statistics panel falls back to raw markdown.
func New(opts Options) *Renderer {
	if opts.Height <= 0 {
		opts.Height = 12
	}
	if opts.WordWrap <= 0 {
		opts.WordWrap = 60
	}

	styleOpt := glamour.WithAutoStyle()
	if opts.MarkdownStyle != "" {
		styleOpt = glamour.WithStandardStyle(opts.MarkdownStyle)
	}
	md, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(opts.WordWrap))
	if err != nil {
		md = nil
	}

	return &Renderer{
		palette:  opts.Palette,
		height:   opts.Height,
		markdown: md,
	}
}

// Title is the chart heading for a frame.
func Title(f steplog.Frame) string {
	return "Binary Search Visualization - " + f.Status.Title()
}

// barWidth picks the widest bar that lets n bars (plus gaps) fit in width.
func barWidth(n, width int) int {
	if n == 0 {
		return 1
	}
	w := width/n - 1
	if w > 3 {
		w = 3
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Chart draws the array as vertical bars. width is the available columns.
func (r *Renderer) Chart(array []int, f steplog.Frame, width int) string {
	if len(array) == 0 {
		return "(empty array)"
	}

	maxV := 0
	for _, v := range array {
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 0 {
		maxV = 1
	}

	bw := barWidth(len(array), width)
	heights := make([]int, len(array))
	for i, v := range array {
		h := 0
		if v > 0 {
			h = (v*r.height + maxV - 1) / maxV
		}
		heights[i] = h
	}

	styles := make([]lipgloss.Style, len(array))
	for i := range array {
		styles[i] = lipgloss.NewStyle().Foreground(r.palette.color(RoleOf(f, i)))
	}

	block := strings.Repeat("█", bw)
	blank := strings.Repeat(" ", bw)

	var sb strings.Builder
	for row := r.height; row >= 1; row-- {
		for i := range array {
			if heights[i] >= row {
				sb.WriteString(styles[i].Render(block))
			} else {
				sb.WriteString(blank)
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	label := lipgloss.NewStyle().Foreground(r.palette.Label)
	if bw >= 3 {
		for i, v := range array {
			sb.WriteString(styles[i].Render(fmt.Sprintf("%*d", bw, v)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		for i := range array {
			sb.WriteString(label.Render(fmt.Sprintf("%*d", bw, i)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString(label.Render(strings.Repeat("─", len(array)*(bw+1))))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Legend shows the colour of each role.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, 4)
	for _, role := range []Role{RoleInRange, RoleEliminated, RoleMid, RoleFound} {
		swatch := lipgloss.NewStyle().Foreground(r.palette.color(role)).Render("■")
		parts = append(parts, swatch+" "+role.String())
	}
	return strings.Join(parts, "   ")
}

// StatsMarkdown is the statistics panel as markdown.
func StatsMarkdown(f steplog.Frame) string {
	var sb strings.Builder
	sb.WriteString("**Statistics:**\n\n")
	sb.WriteString(fmt.Sprintf("- Comparisons so far: %d\n", f.Comparisons()))
	if f.Left <= f.Right {
		sb.WriteString(fmt.Sprintf("- Current search range: [%d, %d]\n", f.Left, f.Right))
	} else {
		sb.WriteString("- Current search range: empty\n")
	}
	sb.WriteString("- Time Complexity: O(log n)\n")
	sb.WriteString(fmt.Sprintf("- Array size (n): %d\n", f.N))
	sb.WriteString(fmt.Sprintf("- Worst case comparisons: %d\n", search.MaxSteps(f.N)))
	switch f.Status {
	case steplog.Found:
		sb.WriteString(fmt.Sprintf("- Result: **found %d at index %d**\n", f.Target, f.Mid()))
	case steplog.NotFound:
		sb.WriteString(fmt.Sprintf("- Result: **%d not found**\n", f.Target))
	}
	return sb.String()
}

// Stats renders the statistics panel through glamour.
func (r *Renderer) Stats(f steplog.Frame) string {
	md := StatsMarkdown(f)
	if r.markdown == nil {
		return md
	}
	out, err := r.markdown.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// Log renders the narration up to the frame's cursor.
func (r *Renderer) Log(f steplog.Frame) string {
	return strings.Join(f.Lines, "\n")
}

// Progress is the "Step k of n" counter.
func (r *Renderer) Progress(f steplog.Frame) string {
	return f.Progress()
}
