// Sandbox renders a sat space in the terminal: boxes fall, stack and get
// pushed around. Arrow keys or hjkl nudge the body named "player" through
// the controller hook, r reloads the scene, q or Esc quits.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/sat"
	"github.com/setanarut/sat/scene"
	"github.com/setanarut/v"
)

// Y grows downward in scene coordinates, so gravity is positive.
const defaultScene = `
tick_rate: 0.016666
gravity: [0, 60]
bodies:
  - name: floor
    size: [76, 2]
    position: [40, 22]
  - name: wall-left
    size: [2, 20]
    position: [3, 12]
  - name: wall-right
    size: [2, 20]
    position: [77, 12]
  - name: player
    size: [4, 2]
    position: [40, 18]
    mass: 4
    damping: 0.9
  - name: crate-a
    size: [4, 4]
    position: [30, 2]
    mass: 2
  - name: crate-b
    size: [6, 3]
    position: [50, 0]
    mass: 3
  - name: crate-c
    size: [3, 3]
    position: [32, -6]
    mass: 1
`

// cellAspect doubles X so world units look square in a terminal cell grid.
const cellAspect = 2

// playerController nudges one body positionally, once per sub-step.
type playerController struct {
	body  *sat.Body
	dir   v.Vec
	speed float64
}

func (c *playerController) Update(dt float64) {
	if c.body == nil || c.dir == (v.Vec{}) {
		return
	}
	c.body.SetPosition(c.body.Position().Add(c.dir.Scale(c.speed * dt)))
	c.dir = v.Vec{}
}

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene (empty for the built-in one)")
	flag.Parse()

	load := func() (*sat.Space, error) {
		if *scenePath != "" {
			return scene.LoadFile(*scenePath)
		}
		return scene.Load([]byte(defaultScene))
	}

	space, err := load()
	if err != nil {
		log.Fatalln(err)
	}
	control := &playerController{body: scene.Find(space, "player"), speed: 40}
	space.AddController(control)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalln(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalln(err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == 'r':
					if reloaded, err := load(); err == nil {
						space = reloaded
						control.body = scene.Find(space, "player")
						space.AddController(control)
					}
				case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
					control.dir = v.Vec{X: -1, Y: 0}
				case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
					control.dir = v.Vec{X: 1, Y: 0}
				case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
					control.dir = v.Vec{X: 0, Y: -1}
				case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
					control.dir = v.Vec{X: 0, Y: 1}
				}
			}
		case now := <-ticker.C:
			space.Update(now.Sub(last).Seconds())
			last = now
			draw(screen, space)
		}
	}
}

func draw(screen tcell.Screen, space *sat.Space) {
	screen.Clear()

	staticStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dynamicStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	space.EachBody(func(body *sat.Body) {
		style := dynamicStyle
		glyph := '█'
		if body.IsStatic() {
			style = staticStyle
			glyph = '▒'
		} else if body.UserData == "player" {
			style = playerStyle
		}
		minX, minY, maxX, maxY := bounds(body.Shape.TransformedVertices())
		for y := cell(minY); float64(y) < maxY; y++ {
			for x := cell(minX * cellAspect); float64(x) < maxX*cellAspect; x++ {
				screen.SetContent(x, y+4, glyph, nil, style)
			}
		}
	})

	drawText(screen, 0, 0, tcell.StyleDefault, sat.DebugInfo(space))
	screen.Show()
}

// cell converts a world coordinate to the first covered cell index.
// Plain int conversion truncates toward zero, which shifts bodies at
// negative coordinates by one cell.
func cell(world float64) int {
	return int(math.Floor(world))
}

func bounds(verts []v.Vec) (minX, minY, maxX, maxY float64) {
	minX, minY = verts[0].X, verts[0].Y
	maxX, maxY = minX, minY
	for _, vert := range verts[1:] {
		if vert.X < minX {
			minX = vert.X
		}
		if vert.X > maxX {
			maxX = vert.X
		}
		if vert.Y < minY {
			minY = vert.Y
		}
		if vert.Y > maxY {
			maxY = vert.Y
		}
	}
	return minX, minY, maxX, maxY
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col, row := x, y
	for _, r := range text {
		if r == '\n' {
			row++
			col = x
			continue
		}
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}
