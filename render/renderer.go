package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/parameter"
)

const title = "CRUSH, RUMBLE & STOMP"

// Screen regions
const (
	mapX     = parameter.LogPanelWidth + parameter.PanelGap
	mapY     = 2
	mapCols  = parameter.ViewWidth * parameter.CellColumns
	statusX  = mapX + mapCols + parameter.PanelGap
	messageY = mapY + parameter.ViewHeight + 1
	helpY    = messageY + 1

	// MinWidth and MinHeight fit every region without clipping
	MinWidth  = statusX + parameter.StatusPanelWidth
	MinHeight = helpY + 1
)

// Renderer draws snapshots onto a tcell screen
// It holds no game state between frames
type Renderer struct {
	screen   tcell.Screen
	profiles *data.ProfileTable
}

// NewRenderer creates a renderer bound to screen
func NewRenderer(screen tcell.Screen, profiles *data.ProfileTable) *Renderer {
	if profiles == nil {
		profiles = data.BuiltinProfiles()
	}
	return &Renderer{screen: screen, profiles: profiles}
}

// Draw renders one frame; an empty snapshot shows the creature selection screen
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	if !snap.Valid() {
		r.drawMenu()
		r.screen.Show()
		return
	}

	base := tcell.StyleDefault.Background(ColorVoid)
	r.text(0, 0, title, base.Foreground(ColorTitle).Bold(true))
	r.text(len(title)+3, 0, "Wind: "+snap.Wind.Arrow(), base.Foreground(ColorDim))

	r.drawLog(snap)
	r.drawMap(snap)
	r.drawStatus(snap)
	r.drawMessage(snap)
	r.drawHelp(snap)

	r.screen.Show()
}

// Viewport returns the world coordinate of the top-left visible square
// The view centers on the creature and stops at the city edges
func Viewport(snap engine.Snapshot) core.Point {
	w, h := snap.Grid.Width(), snap.Grid.Height()
	return core.Point{
		X: max(0, min(w-parameter.ViewWidth, snap.Creature.Pos.X-parameter.ViewWidth/2)),
		Y: max(0, min(h-parameter.ViewHeight, snap.Creature.Pos.Y-parameter.ViewHeight/2)),
	}
}

// ScreenPos maps a world coordinate to the terminal cell of its glyph
func ScreenPos(snap engine.Snapshot, p core.Point) (x, y int, visible bool) {
	origin := Viewport(snap)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	if dx < 0 || dy < 0 || dx >= parameter.ViewWidth || dy >= parameter.ViewHeight {
		return 0, 0, false
	}
	return mapX + dx*parameter.CellColumns, mapY + dy, true
}

func (r *Renderer) drawMenu() {
	base := tcell.StyleDefault.Background(ColorVoid)
	r.text(2, 1, title, base.Foreground(ColorTitle).Bold(true))
	r.text(2, 2, "Choose your monster", base.Foreground(ColorDim))

	for i, v := range r.profiles.Variants() {
		p := r.profiles.Get(v)
		line := fmt.Sprintf("%d  %s  %-10s %s", i+1, p.Glyph, p.Name, p.Desc)
		r.text(2, 4+i*2, line, base.Foreground(ColorText))
	}
	r.text(2, 11, "q: quit", base.Foreground(ColorDim))
}

func (r *Renderer) drawLog(snap engine.Snapshot) {
	panel := tcell.StyleDefault.Background(ColorPanel)
	r.fill(0, mapY-1, parameter.LogPanelWidth, parameter.ViewHeight+1, panel)
	r.text(1, mapY-1, "EVENT LOG", panel.Foreground(ColorDim).Bold(true))

	// newest entries at the bottom, oldest scroll off the top
	entries := snap.Log
	if len(entries) > parameter.ViewHeight {
		entries = entries[len(entries)-parameter.ViewHeight:]
	}
	for i, e := range entries {
		msg := clip(e.Message, parameter.LogPanelWidth-2)
		r.text(1, mapY+i, msg, panel.Foreground(severityColor(e.Severity)))
	}
}

func (r *Renderer) drawMap(snap engine.Snapshot) {
	origin := Viewport(snap)

	enemies := make(map[core.Point]component.Enemy, len(snap.Enemies))
	for _, e := range snap.Enemies {
		enemies[e.Pos] = e
	}
	civilians := make(map[core.Point]bool, len(snap.Civilians))
	for _, c := range snap.Civilians {
		civilians[c.Pos] = true
	}
	fires := make(map[core.Point]bool, len(snap.Fires))
	for _, f := range snap.Fires {
		fires[f.Pos] = true
	}

	for row := 0; row < parameter.ViewHeight; row++ {
		for col := 0; col < parameter.ViewWidth; col++ {
			p := core.Point{X: origin.X + col, Y: origin.Y + row}
			g := r.squareGlyph(snap, p, enemies, civilians, fires)
			style := tcell.StyleDefault.Foreground(g.fg).Background(g.bg)
			x := mapX + col*parameter.CellColumns
			r.screen.SetContent(x, mapY+row, g.ch, nil, style)
			for pad := 1; pad < parameter.CellColumns; pad++ {
				r.screen.SetContent(x+pad, mapY+row, ' ', nil, style)
			}
		}
	}

	border := ColorTitle
	if snap.Creature.Berserk {
		border = ColorBerserk
	}
	r.text(mapX, mapY-1, strings.Repeat("─", mapCols), tcell.StyleDefault.Foreground(border).Background(ColorVoid))
}

// squareGlyph layers creature over enemies over civilians over fire over terrain
func (r *Renderer) squareGlyph(snap engine.Snapshot, p core.Point, enemies map[core.Point]component.Enemy, civilians, fires map[core.Point]bool) glyph {
	if p == snap.Creature.Pos {
		bg := ColorCreature
		switch {
		case snap.DamageFlash > 0:
			bg = ColorFlash
		case snap.Creature.Berserk:
			bg = ColorBerserk
		}
		return glyph{r.creatureRune(snap.Creature.Variant), ColorTitle, bg}
	}

	burning := fires[p]
	if e, ok := enemies[p]; ok {
		bg := ColorCreature
		if burning {
			bg = ColorFire
		}
		return glyph{enemyRune(e.Type), ColorDamage, bg}
	}
	if civilians[p] {
		bg := ColorRoad
		if burning {
			bg = ColorFire
		}
		return glyph{'o', ColorText, bg}
	}
	if burning {
		return glyph{'^', ColorScore, ColorFire}
	}
	if !snap.Grid.InBounds(p) {
		return glyph{' ', ColorText, ColorVoid}
	}
	return cellGlyph(snap.Grid.At(p))
}

func (r *Renderer) creatureRune(v component.Variant) rune {
	if p := r.profiles.Get(v); p != nil && p.Glyph != "" {
		return []rune(p.Glyph)[0]
	}
	return '@'
}

func (r *Renderer) drawStatus(snap engine.Snapshot) {
	panel := tcell.StyleDefault.Background(ColorPanel)
	r.fill(statusX, mapY-1, parameter.StatusPanelWidth, parameter.ViewHeight+1, panel)

	c := snap.Creature
	name := string(c.Variant)
	if p := r.profiles.Get(c.Variant); p != nil {
		name = p.Glyph + " " + p.Name
	}
	x, y := statusX+1, mapY-1
	r.text(x, y, name, panel.Foreground(ColorTitle).Bold(true))
	y++
	if c.Berserk {
		r.text(x, y, "BERSERK!", panel.Foreground(ColorDamage).Bold(true))
	}
	y++

	r.text(x, y, fmt.Sprintf("HP   %.1f/%g", c.HP, c.MaxHP), panel.Foreground(ColorDamage))
	y++
	r.meter(x, y, c.HP/c.MaxHP, ColorDamage, panel)
	y++

	food := c.MaxHunger - c.Hunger
	foodRatio := float64(food) / float64(max(1, c.MaxHunger))
	foodColor := ColorScore
	if foodRatio < 0.25 {
		foodColor = ColorDamage
	}
	r.text(x, y, fmt.Sprintf("FOOD %d/%d", food, c.MaxHunger), panel.Foreground(foodColor))
	y++
	r.meter(x, y, foodRatio, foodColor, panel)
	y += 2

	r.text(x, y, fmt.Sprintf("Score %d", snap.Score), panel.Foreground(ColorScore))
	y++
	r.text(x, y, fmt.Sprintf("Kills %d", snap.Kills), panel.Foreground(ColorText))
	y++
	r.text(x, y, fmt.Sprintf("Moves %d", c.ActionPoints), panel.Foreground(ColorMoves))
	y++
	r.text(x, y, fmt.Sprintf("Turn  %d", snap.Turn), panel.Foreground(ColorText))
	y++
	if snap.BaseAlive {
		r.text(x, y, "Base: UP", panel.Foreground(ColorDamage))
	} else {
		r.text(x, y, "Base: DOWN", panel.Foreground(ColorDim))
	}
	y++

	if c.Carrying != nil {
		y++
		r.text(x, y, "Carrying: "+c.Carrying.Type.String(), panel.Foreground(ColorCarry))
		y++
		r.text(x, y, "Throw dir: "+c.LastFacing.Arrow(), panel.Foreground(ColorDim))
	}
}

func (r *Renderer) drawMessage(snap engine.Snapshot) {
	fg := ColorTitle
	switch {
	case snap.DamageFlash > 0:
		fg = ColorDamage
	case snap.Creature.Berserk:
		fg = ColorDamage
	}
	style := tcell.StyleDefault.Background(ColorVoid).Foreground(fg)
	if snap.DamageFlash > 0 {
		style = style.Bold(true)
	}
	msg := snap.Message
	if snap.GameOver {
		msg = fmt.Sprintf("GAME OVER: %s  Score %d  Turns %d", snap.Cause, snap.Score, snap.Turn)
	}
	r.text(mapX, messageY, clip(msg, mapCols+parameter.StatusPanelWidth), style)
}

func (r *Renderer) drawHelp(snap engine.Snapshot) {
	var b strings.Builder
	if snap.GameOver {
		b.WriteString("n: play again • 1-3: change monster • q: quit")
	} else {
		b.WriteString("WASD/HJKL/Arrows: move • ")
		if p := r.profiles.Get(snap.Creature.Variant); p != nil {
			if p.BreathRange > 0 {
				b.WriteString("SPACE: fire • ")
			}
			if p.CanGrab {
				b.WriteString("T: throw • ")
			}
		}
		b.WriteString(".: wait • q: quit")
	}
	r.text(0, helpY, b.String(), tcell.StyleDefault.Background(ColorVoid).Foreground(ColorDim))
}

// meter draws a horizontal bar filled to ratio
func (r *Renderer) meter(x, y int, ratio float64, fg tcell.Color, panel tcell.Style) {
	filled := int(max(0, min(1, ratio))*parameter.MeterWidth + 0.5)
	for i := 0; i < parameter.MeterWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, panel.Foreground(fg))
	}
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
