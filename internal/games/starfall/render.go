package starfall

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/velikanov/astro-arcade/internal/core"
	"github.com/velikanov/astro-arcade/internal/engine"
)

// Visual characters for rendering
const (
	BulletChar   = '|'
	FragmentChar = '◦'
	ParticleChar = '·'
	StarChar     = '·'
	StarDimChar  = '.'
	SeparatorCh  = '─'
)

// Player ship, 5x2
var shipRows = []string{
	` /^\ `,
	`/___\`,
}

// Asteroid glyphs and colors by class
var asteroidGlyphs = map[engine.AsteroidClass]rune{
	engine.ClassNormal:    '@',
	engine.ClassFast:      'o',
	engine.ClassHoming:    '◆',
	engine.ClassSplitting: '●',
}

var asteroidColors = map[engine.AsteroidClass]core.Color{
	engine.ClassNormal:    core.ColorWhite,
	engine.ClassFast:      core.ColorCyan,
	engine.ClassHoming:    core.ColorMagenta,
	engine.ClassSplitting: core.ColorRed,
}

// Pickup glyphs and colors by type
var pickupGlyphs = map[engine.PickupType]rune{
	engine.PickupAmmo:      'A',
	engine.PickupHealth:    '+',
	engine.PickupShield:    'S',
	engine.PickupRapidFire: 'R',
	engine.PickupBomb:      'B',
}

var pickupColors = map[engine.PickupType]core.Color{
	engine.PickupAmmo:      core.ColorYellow,
	engine.PickupHealth:    core.ColorGreen,
	engine.PickupShield:    core.ColorCyan,
	engine.PickupRapidFire: core.ColorMagenta,
	engine.PickupBomb:      core.ColorRed,
}

// buildStarfield seeds the scrolling background. It uses its own RNG
// so the count of stars never perturbs the simulation stream.
func (g *Game) buildStarfield(seed int64) {
	rng := rand.New(rand.NewSource(seed ^ 0x574c1f))
	w := g.runtime.ScreenW
	h := g.runtime.ScreenH - hudHeight

	count := w * h / 40
	g.stars = g.stars[:0]
	for i := 0; i < count; i++ {
		glyph := StarChar
		if rng.Intn(3) == 0 {
			glyph = StarDimChar
		}
		g.stars = append(g.stars, star{
			x:     rng.Intn(w),
			y:     rng.Intn(h),
			glyph: glyph,
		})
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	g.renderStarfield(dst)
	g.renderHUD(dst)
	g.renderEntities(dst)
	g.renderPlayer(dst)
	g.renderTexts(dst)
	g.renderOverlay(dst)
}

// renderStarfield draws the slowly scrolling background.
func (g *Game) renderStarfield(dst *core.Screen) {
	worldH := g.runtime.ScreenH - hudHeight
	if worldH <= 0 {
		return
	}
	scroll := int(g.session.Tick()/12) % worldH
	for _, st := range g.stars {
		y := (st.y + scroll) % worldH
		dst.SetColored(st.x, hudHeight+y, st.glyph, core.ColorGray)
	}
}

// renderHUD draws score, health, ammo, level and active buffs.
func (g *Game) renderHUD(dst *core.Screen) {
	p := &g.session.Player

	scoreText := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(1, 0, scoreText, core.ColorWhite)

	// Health bar in the center
	maxHP := g.maxHealth
	barLen := 10
	filled := 0
	if maxHP > 0 {
		filled = p.Health * barLen / maxHP
	}
	bar := "HP " + strings.Repeat("█", filled) + strings.Repeat("░", barLen-filled)
	barX := (dst.Width() - len([]rune(bar))) / 2
	barColor := core.ColorGreen
	if p.Health*3 <= maxHP {
		barColor = core.ColorRed
	}
	dst.DrawText(barX, 0, bar, barColor)

	levelText := fmt.Sprintf("Level: %d", g.session.Level())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText, core.ColorWhite)

	ammoText := fmt.Sprintf("Ammo: %d", p.Ammo)
	ammoColor := core.ColorYellow
	if p.Ammo == 0 {
		ammoColor = core.ColorRed
	}
	dst.DrawText(1, 1, ammoText, ammoColor)

	buffs := g.buildBuffsString()
	if buffs != "" {
		dst.DrawText(len(ammoText)+3, 1, buffs, core.ColorCyan)
	}
	// Separator under the HUD
	dst.DrawHLine(0, hudHeight, dst.Width(), SeparatorCh, core.ColorGray)
}

// buildBuffsString lists active power-ups with remaining seconds.
func (g *Game) buildBuffsString() string {
	p := &g.session.Player
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	var parts []string
	if p.Shielded() {
		parts = append(parts, fmt.Sprintf("SHIELD(%d)", p.Shield/tickRate+1))
	}
	if p.RapidFire() {
		parts = append(parts, fmt.Sprintf("RAPID(%d)", p.Rapid/tickRate+1))
	}
	return strings.Join(parts, " ")
}

// renderEntities draws every live simulated entity from the snapshot.
func (g *Game) renderEntities(dst *core.Screen) {
	g.views = g.session.Snapshot(g.views[:0])
	for _, v := range g.views {
		x := int(math.Round(v.X))
		y := int(math.Round(v.Y)) + hudHeight
		if y <= hudHeight {
			continue // still above the playfield or under the separator
		}

		switch v.Kind {
		case engine.KindBullet:
			dst.SetColored(x, y, BulletChar, core.ColorYellow)
		case engine.KindAsteroid:
			g.drawAsteroid(dst, x, y, v)
		case engine.KindFragment:
			dst.SetColored(x, y, FragmentChar, core.ColorGray)
		case engine.KindPickup:
			dst.SetColored(x, y, pickupGlyphs[v.Pickup], pickupColors[v.Pickup])
		case engine.KindParticle:
			dst.SetColored(x, y, ParticleChar, core.ColorOrange)
		}
	}
}

// drawAsteroid scales the glyph footprint with the radius so big rocks
// read as big on a coarse terminal grid.
func (g *Game) drawAsteroid(dst *core.Screen, x, y int, v engine.EntityView) {
	glyph := asteroidGlyphs[v.Class]
	color := asteroidColors[v.Class]

	dst.SetColored(x, y, glyph, color)
	if v.Radius >= 2 {
		dst.SetColored(x-1, y, '(', color)
		dst.SetColored(x+1, y, ')', color)
	}
}

// renderPlayer draws the ship, blinking while invulnerable and haloed
// while shielded.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := &g.session.Player

	if p.Invulnerable() && !p.Shielded() && g.session.Tick()%10 < 5 {
		return // blink
	}

	color := core.ColorGreen
	if p.Shielded() {
		color = core.ColorCyan
	}

	px := int(math.Round(p.X))
	py := int(math.Round(p.Y)) + hudHeight
	for dy, row := range shipRows {
		for dx, r := range row {
			if r != ' ' {
				dst.SetColored(px+dx, py+dy, r, color)
			}
		}
	}

	if p.Shielded() {
		dst.SetColored(px-1, py+1, '(', core.ColorCyan)
		dst.SetColored(px+int(p.W), py+1, ')', core.ColorCyan)
	}
}

// renderTexts draws floating annotations, risen from their anchor by an
// eased fraction of their lifetime.
func (g *Game) renderTexts(dst *core.Screen) {
	const maxRise = 3.0
	for _, t := range g.texts {
		progress := float64(t.age) / float64(t.life)
		rise := engine.Lerp(0, maxRise, engine.EaseOutQuad(progress))

		x := int(math.Round(t.x)) - len(t.text)/2
		y := int(math.Round(t.y-rise)) + hudHeight
		if y <= hudHeight {
			y = hudHeight + 1
		}
		dst.DrawText(x, y, t.text, core.ColorYellow)
	}
}

// renderOverlay draws the paused / game-over message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorGray)
}
