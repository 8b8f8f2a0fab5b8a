package render

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
)

// World-to-cell scaling, terminal cells are roughly twice as tall as wide
const (
	cellWidth  = 20.0
	cellHeight = 40.0
)

var (
	styleActor   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePursuer = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStunned = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Renderer draws the simulation state to a tcell screen
// The camera follows the actor horizontally
type Renderer struct {
	screen tcell.Screen
	world  *engine.World
}

// NewRenderer creates a renderer for the given screen and world
func NewRenderer(screen tcell.Screen, world *engine.World) *Renderer {
	return &Renderer{
		screen: screen,
		world:  world,
	}
}

// Draw renders one frame: arena, entities, HUD and overlays
func (r *Renderer) Draw() {
	r.screen.Clear()

	width, height := r.screen.Size()
	groundRow := height - 3

	res := r.world.Resources
	akin, ok := r.world.Components.Kinetic.GetComponent(res.Game.Actor)
	if !ok {
		r.screen.Show()
		return
	}

	for col := 0; col < width; col++ {
		r.screen.SetContent(col, groundRow, '─', nil, styleGround)
	}

	r.drawPursuers(akin.X, width, groundRow)
	r.drawActor(width, groundRow)
	r.drawHUD(width)

	if res.Round.GameOver {
		r.drawCenteredText(width, height/2, "GAME OVER", styleOverlay)
		r.drawCenteredText(width, height/2+1,
			fmt.Sprintf("final score %d - press r to restart", res.Round.Score), styleHUD)
	}

	r.screen.Show()
}

// project maps a world position to a screen cell relative to the camera
func (r *Renderer) project(x, y, cameraX float64, width, groundRow int) (int, int) {
	col := width/2 + int((x-cameraX)/cellWidth)
	row := groundRow - 1 - int((y-r.world.Resources.Config.GroundY)/cellHeight)
	return col, row
}

func (r *Renderer) drawActor(width, groundRow int) {
	res := r.world.Resources
	e := res.Game.Actor

	kin, ok := r.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	col, row := r.project(kin.X, kin.Y, kin.X, width, groundRow)

	style := styleActor
	if r.flashInverted(e) {
		style = style.Reverse(true)
	}

	r.screen.SetContent(col, row, '@', nil, style)

	// Facing marker on the striking side
	if facing, ok := r.world.Components.Facing.GetComponent(e); ok {
		marker := '>'
		offset := 1
		if facing.Direction == core.FacingLeft {
			marker = '<'
			offset = -1
		}
		if ac, ok := r.world.Components.Actor.GetComponent(e); ok && actor.Lookup(ac.State).Attacking() {
			r.screen.SetContent(col+offset, row, marker, nil, style)
		}
	}
}

func (r *Renderer) drawPursuers(cameraX float64, width, groundRow int) {
	for _, e := range r.world.Components.Pursuer.GetAllEntities() {
		kin, ok := r.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		col, row := r.project(kin.X, kin.Y, cameraX, width, groundRow)
		if col < 0 || col >= width || row < 0 {
			continue
		}

		style := stylePursuer
		if r.world.Components.Stun.HasEntity(e) {
			style = styleStunned
		}
		if r.flashInverted(e) {
			style = style.Reverse(true)
		}

		r.screen.SetContent(col, row, 'Ω', nil, style)
	}
}

// flashInverted reports whether the hit flash currently shows inverted
// colors, the flash alternates every half of its duration
func (r *Renderer) flashInverted(e core.Entity) bool {
	flash, ok := r.world.Components.HitFlash.GetComponent(e)
	if !ok {
		return false
	}
	elapsed := flash.Duration - flash.Remaining
	return (elapsed/(flash.Duration/2))%2 == 0
}

func (r *Renderer) drawHUD(width int) {
	res := r.world.Resources

	remaining := res.Round.Remaining.Round(time.Second)
	left := fmt.Sprintf(" score %d   time %s", res.Round.Score, remaining)
	r.drawText(0, 0, left, styleHUD)

	if health, ok := r.world.Components.Health.GetComponent(res.Game.Actor); ok {
		bar := healthBar(health.Current, health.Max)
		r.drawText(width-utf8.RuneCountInString(bar)-1, 0, bar, styleHUD)
	}
}

// healthBar renders hit points as a fixed-width block gauge
func healthBar(current, max int) string {
	const slots = 10
	filled := 0
	if max > 0 {
		filled = current * slots / max
	}
	bar := make([]rune, slots)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return "hp " + string(bar)
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawCenteredText(width, row int, text string, style tcell.Style) {
	r.drawText((width-utf8.RuneCountInString(text))/2, row, text, style)
}
