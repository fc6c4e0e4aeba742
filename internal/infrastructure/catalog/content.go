package catalog

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// fit cuts lines to the given size.
func fit(lines []string, s entity.Size) string {
	if s.Height < len(lines) {
		lines = lines[:max(s.Height, 0)]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = runewidth.Truncate(l, max(s.Width, 0), "")
	}
	return strings.Join(out, "\n")
}

type placeholder struct {
	text string
	seed string
}

func newPlaceholder(text string) *placeholder { return &placeholder{text: text} }

func (p *placeholder) Mount(_ context.Context, seed string) error {
	p.seed = seed
	return nil
}
func (p *placeholder) Unmount()           {}
func (p *placeholder) Click(entity.Point) {}
func (p *placeholder) Render(s entity.Size) string {
	lines := []string{p.text}
	if p.seed != "" {
		lines = append(lines, "", "seed: "+p.seed)
	}
	return fit(lines, s)
}

var calcKeys = [4][4]rune{
	{'7', '8', '9', '/'},
	{'4', '5', '6', '*'},
	{'1', '2', '3', '-'},
	{'0', 'C', '=', '+'},
}

const (
	calcKeyWidth = 4
	calcKeyTop   = 2
)

// calculator is an integer calculator evaluated left to right.
type calculator struct {
	display string
	acc     int64
	op      rune
	fresh   bool
}

func (c *calculator) Mount(_ context.Context, seed string) error {
	c.clear()
	if seed == "" {
		return nil
	}
	if _, err := strconv.ParseInt(seed, 10, 64); err != nil {
		return fmt.Errorf("calculator seed %q is not an integer", seed)
	}
	c.display = seed
	return nil
}

func (c *calculator) clear() {
	c.display, c.acc, c.op, c.fresh = "0", 0, 0, true
}

func (c *calculator) Unmount() {}

func (c *calculator) Click(p entity.Point) {
	row, col := p.Y-calcKeyTop, p.X/calcKeyWidth
	if row < 0 || row >= len(calcKeys) || col >= len(calcKeys[row]) {
		return
	}
	c.press(calcKeys[row][col])
}

func (c *calculator) press(k rune) {
	switch {
	case k >= '0' && k <= '9':
		if c.fresh || c.display == "0" {
			c.display = ""
		}
		c.display += string(k)
		c.fresh = false
	case k == 'C':
		c.clear()
	default:
		cur, _ := strconv.ParseInt(c.display, 10, 64)
		if c.op != 0 {
			cur = apply(c.acc, c.op, cur)
			c.display = strconv.FormatInt(cur, 10)
		}
		c.acc, c.fresh = cur, true
		c.op = k
		if k == '=' {
			c.op = 0
		}
	}
}

func apply(a int64, op rune, b int64) int64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		if b == 0 {
			return 0
		}
		return a / b
	}
	return b
}

func (c *calculator) Render(s entity.Size) string {
	lines := []string{fmt.Sprintf("%*s", max(s.Width-1, 1), c.display), ""}
	for _, row := range calcKeys {
		var b strings.Builder
		for _, k := range row {
			fmt.Fprintf(&b, "[%c] ", k)
		}
		lines = append(lines, b.String())
	}
	return fit(lines, s)
}

// notes shows its seed as text and moves a cursor to the clicked line.
type notes struct {
	lines  []string
	cursor int
}

func (n *notes) Mount(_ context.Context, seed string) error {
	n.lines = []string{"Untitled"}
	if seed != "" {
		n.lines = strings.Split(seed, `\n`)
	}
	n.cursor = 0
	return nil
}

func (n *notes) Unmount() {}

func (n *notes) Click(p entity.Point) {
	if p.Y >= 0 && p.Y < len(n.lines) {
		n.cursor = p.Y
	}
}

func (n *notes) Render(s entity.Size) string {
	out := make([]string, len(n.lines))
	for i, l := range n.lines {
		mark := "  "
		if i == n.cursor {
			mark = "> "
		}
		out[i] = mark + l
	}
	return fit(out, s)
}

var browserLinks = []string{"https://example.org/", "https://example.org/news", "https://example.org/about"}

// browser simulates navigation between a few pages.
type browser struct {
	history []string
}

func (b *browser) Mount(_ context.Context, seed string) error {
	if seed == "" {
		seed = "about:blank"
	}
	u, err := url.Parse(seed)
	if err != nil {
		return fmt.Errorf("browser seed: %w", err)
	}
	switch u.Scheme {
	case "about", "http", "https":
	default:
		return fmt.Errorf("browser seed %q: unsupported scheme %q", seed, u.Scheme)
	}
	b.history = []string{u.String()}
	return nil
}

func (b *browser) Unmount() {}

func (b *browser) current() string {
	if len(b.history) == 0 {
		return ""
	}
	return b.history[len(b.history)-1]
}

// Click on row 0 goes back; rows 2.. follow links.
func (b *browser) Click(p entity.Point) {
	if p.Y == 0 && p.X < 3 && len(b.history) > 1 {
		b.history = b.history[:len(b.history)-1]
		return
	}
	if i := p.Y - 2; i >= 0 && i < len(browserLinks) {
		b.history = append(b.history, browserLinks[i])
	}
}

func (b *browser) Render(s entity.Size) string {
	lines := []string{"<  " + b.current(), strings.Repeat("-", max(s.Width, 0))}
	for _, l := range browserLinks {
		lines = append(lines, "  "+l)
	}
	return fit(lines, s)
}

type node struct {
	name     string
	children []*node
	open     bool
}

// explorer is a mock file tree. Clicking a folder toggles it.
type explorer struct {
	root *node
}

func newExplorer() *explorer { return &explorer{} }

func (e *explorer) Mount(_ context.Context, seed string) error {
	if seed == "" {
		seed = "home"
	}
	e.root = &node{name: seed, open: true, children: []*node{
		{name: "Documents", children: []*node{{name: "todo.txt"}, {name: "report.md"}}},
		{name: "Pictures", children: []*node{{name: "cat.png"}}},
		{name: "readme.txt"},
	}}
	return nil
}

func (e *explorer) Unmount() {}

type row struct {
	n     *node
	depth int
}

func (e *explorer) rows() []row {
	var out []row
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		out = append(out, row{n: n, depth: depth})
		if !n.open {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	if e.root != nil {
		walk(e.root, 0)
	}
	return out
}

func (e *explorer) Click(p entity.Point) {
	rows := e.rows()
	if p.Y < 0 || p.Y >= len(rows) {
		return
	}
	if n := rows[p.Y].n; len(n.children) > 0 {
		n.open = !n.open
	}
}

func (e *explorer) Render(s entity.Size) string {
	rows := e.rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		icon := "  "
		if len(r.n.children) > 0 {
			icon = "+ "
			if r.n.open {
				icon = "- "
			}
		}
		lines[i] = strings.Repeat("  ", r.depth) + icon + r.n.name
	}
	return fit(lines, s)
}

var terminalScript = []struct{ cmd, out string }{
	{"uname", "dumbdesk"},
	{"whoami", "guest"},
	{"ls", "Documents  Pictures  readme.txt"},
	{"date", "today"},
}

// terminal replays a canned command on each click.
type terminal struct {
	cwd   string
	lines []string
	next  int
}

func (t *terminal) Mount(_ context.Context, seed string) error {
	t.cwd = "~"
	if seed != "" {
		t.cwd = seed
	}
	t.lines = []string{"dumbdesk terminal"}
	t.next = 0
	return nil
}

func (t *terminal) Unmount() {}

func (t *terminal) Click(entity.Point) {
	step := terminalScript[t.next%len(terminalScript)]
	t.lines = append(t.lines, t.cwd+" $ "+step.cmd, step.out)
	t.next++
}

func (t *terminal) Render(s entity.Size) string {
	lines := append(append([]string(nil), t.lines...), t.cwd+" $ _")
	if s.Height > 0 && len(lines) > s.Height {
		lines = lines[len(lines)-s.Height:]
	}
	return fit(lines, s)
}

const (
	mineCols  = 8
	mineRows  = 5
	mineCount = 6
)

// minesweeper places mines from a hash of the seed so a seed always
// yields the same board.
type minesweeper struct {
	mines    [mineRows][mineCols]bool
	revealed [mineRows][mineCols]bool
	lost     bool
}

func (m *minesweeper) Mount(_ context.Context, seed string) error {
	*m = minesweeper{}
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	state := h.Sum64()
	for placed := 0; placed < mineCount; {
		state = state*6364136223846793005 + 1442695040888963407
		i := int(state>>33) % (mineRows * mineCols)
		r, c := i/mineCols, i%mineCols
		if m.mines[r][c] {
			continue
		}
		m.mines[r][c] = true
		placed++
	}
	return nil
}

func (m *minesweeper) Unmount() {}

func (m *minesweeper) Click(p entity.Point) {
	r, c := p.Y-1, p.X/2
	if m.lost || r < 0 || r >= mineRows || c < 0 || c >= mineCols {
		return
	}
	m.revealed[r][c] = true
	if m.mines[r][c] {
		m.lost = true
	}
}

func (m *minesweeper) neighbours(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			rr, cc := r+dr, c+dc
			if (dr != 0 || dc != 0) && rr >= 0 && rr < mineRows && cc >= 0 && cc < mineCols && m.mines[rr][cc] {
				n++
			}
		}
	}
	return n
}

func (m *minesweeper) Render(s entity.Size) string {
	status := fmt.Sprintf("mines: %d", mineCount)
	if m.lost {
		status = "BOOM"
	}
	lines := []string{status}
	for r := 0; r < mineRows; r++ {
		var b strings.Builder
		for c := 0; c < mineCols; c++ {
			switch {
			case !m.revealed[r][c] && !m.lost:
				b.WriteString("# ")
			case m.mines[r][c]:
				b.WriteString("* ")
			case !m.revealed[r][c]:
				b.WriteString("# ")
			default:
				fmt.Fprintf(&b, "%d ", m.neighbours(r, c))
			}
		}
		lines = append(lines, b.String())
	}
	return fit(lines, s)
}
