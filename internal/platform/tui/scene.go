package tui

import (
	"math"
	"sort"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Camera placement behind and above the player.
const (
	cameraZ      = 6.0
	cameraY      = 3.0
	horizonRow   = 2 // first track row, below the HUD
	stripeLength = 4.0
	minDepth     = 0.5
)

// Scene is the terminal runner.Renderer. The session commands it through
// Attach, Detach and SetPlayerTint; Draw projects what it has been told about
// onto a Screen with a simple pinhole camera.
type Scene struct {
	cfg      config.RunnerConfig
	bounds   runner.KindBounds
	attached map[runner.EntityID]struct{}
	tinted   bool

	// Projection for the current screen size.
	width, height int
	fx, fy        float64
}

// NewScene creates an empty scene.
func NewScene(cfg config.RunnerConfig) *Scene {
	return &Scene{
		cfg:      cfg,
		bounds:   runner.NewKindBounds(cfg),
		attached: make(map[runner.EntityID]struct{}),
	}
}

// Attach implements runner.Renderer.
func (sc *Scene) Attach(e runner.Entity) {
	sc.attached[e.ID] = struct{}{}
}

// Detach implements runner.Renderer.
func (sc *Scene) Detach(id runner.EntityID) {
	delete(sc.attached, id)
}

// SetPlayerTint implements runner.Renderer.
func (sc *Scene) SetPlayerTint(hit bool) {
	sc.tinted = hit
}

// Attached returns the number of entities the scene is drawing.
func (sc *Scene) Attached() int { return len(sc.attached) }

// Tinted reports whether the player is drawn in the hit colour.
func (sc *Scene) Tinted() bool { return sc.tinted }

// fit recomputes the projection so the player's ground sits on the last
// track row and the outer lanes land a quarter screen from the centre.
func (sc *Scene) fit(w, h int) {
	sc.width, sc.height = w, h
	depth := cameraZ - sc.cfg.Player.Z
	sc.fy = float64(h-2-horizonRow) * depth / cameraY
	outer := 1.0
	if n := len(sc.cfg.Lanes); n > 0 {
		outer = math.Max(math.Abs(sc.cfg.Lanes[0]), math.Abs(sc.cfg.Lanes[n-1]))
	}
	if outer == 0 {
		outer = 1
	}
	sc.fx = float64(w) / 4 * depth / outer
}

// project maps a world point to screen coordinates.
func (sc *Scene) project(p core.Vec3) (x, y int, depth float64, ok bool) {
	depth = cameraZ - p.Z()
	if depth < minDepth {
		return 0, 0, depth, false
	}
	sx := float64(sc.width)/2 + p.X()*sc.fx/depth
	sy := float64(horizonRow) + (cameraY-p.Y())*sc.fy/depth
	return int(math.Round(sx)), int(math.Round(sy)), depth, true
}

// Draw renders the track, the attached entities and the player.
func (sc *Scene) Draw(screen *core.Screen, s *runner.Session) {
	if sc.width != screen.Width() || sc.height != screen.Height() {
		sc.fit(screen.Width(), screen.Height())
	}
	sc.drawTrack(screen, s.World().GroundZ())

	entities := s.Entities()
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Position.Z() < entities[j].Position.Z()
	})
	for _, e := range entities {
		if _, ok := sc.attached[e.ID]; ok {
			sc.drawEntity(screen, e)
		}
	}

	if p := s.Player(); p.Visible() {
		sc.drawPlayer(screen, p)
	}
}

// drawTrack draws lane dividers and ground stripes that scroll with groundZ.
func (sc *Scene) drawTrack(screen *core.Screen, groundZ float64) {
	bottom := screen.Height() - 2
	for row := horizonRow + 1; row <= bottom; row++ {
		depth := cameraY * sc.fy / float64(row-horizonRow)
		z := cameraZ - depth

		stripe := math.Mod(z-groundZ, stripeLength)
		if stripe < 0 {
			stripe += stripeLength
		}
		divider := '.'
		if stripe < stripeLength/4 {
			divider = '|'
		}

		for _, x := range sc.dividers() {
			sx := int(math.Round(float64(sc.width)/2 + x*sc.fx/depth))
			screen.SetColored(sx, row, divider, core.ColorTrack)
		}
	}
	screen.DrawHLine(0, horizonRow, screen.Width(), '─', core.ColorTrack)
}

// dividers returns the X of every line between and around the lanes.
func (sc *Scene) dividers() []float64 {
	lanes := sc.cfg.Lanes
	if len(lanes) == 0 {
		return nil
	}
	out := make([]float64, 0, len(lanes)+1)
	half := 1.0
	if len(lanes) > 1 {
		half = (lanes[1] - lanes[0]) / 2
	}
	out = append(out, lanes[0]-half)
	for i := 1; i < len(lanes); i++ {
		out = append(out, (lanes[i-1]+lanes[i])/2)
	}
	return append(out, lanes[len(lanes)-1]+half)
}

func (sc *Scene) drawEntity(screen *core.Screen, e runner.Entity) {
	var (
		glyph rune
		color core.Color
	)
	switch e.Kind {
	case runner.KindObstacle:
		glyph, color = '█', core.ColorObstacle
	case runner.KindCoin:
		glyph, color = '$', core.ColorCoin
	case runner.KindHeart:
		glyph, color = '♥', core.ColorHeart
	default:
		return
	}
	sc.drawBox(screen, sc.bounds.Bounds(e), glyph, color)
}

func (sc *Scene) drawPlayer(screen *core.Screen, p runner.Player) {
	color := core.ColorPlayer
	if sc.tinted {
		color = core.ColorPlayerHit
	}
	sc.drawBox(screen, p.Bounds(), '▓', color)
}

// drawBox fills the projected front face of b. A spinning pickup is drawn as
// wide as its enclosing box. Far boxes shrink to a single cell.
func (sc *Scene) drawBox(screen *core.Screen, b core.Box, glyph rune, color core.Color) {
	x, y, depth, ok := sc.project(b.Center())
	if !ok {
		return
	}
	size := b.Size()
	w := max(1, int(math.Round(size.X()*sc.fx/depth)))
	h := max(1, int(math.Round(size.Y()*sc.fy/depth)))
	left := x - w/2
	top := y - h/2
	for row := top; row < top+h; row++ {
		if row <= horizonRow {
			continue
		}
		for col := left; col < left+w; col++ {
			screen.SetColored(col, row, glyph, color)
		}
	}
}

var _ runner.Renderer = (*Scene)(nil)
