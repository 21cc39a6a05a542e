package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/director"
	"github.com/milk9111/invaders/obj"
	"github.com/milk9111/invaders/prefabs"
)

type scene int

const (
	sceneTitle scene = iota
	scenePlaying
	sceneGameOver
)

var backgroundColor = color.RGBA{R: 0x0a, G: 0x0a, B: 0x14, A: 0xff}

// Game wires the formation, bullet pools, resolver, and HUD into the ebiten
// loop. All state lives here so a restart is just resetting these fields.
type Game struct {
	frames int
	debug  bool
	paused bool
	scene  scene

	input *obj.Input
	specs *prefabs.Specs

	health      *component.Health
	score       *component.Score
	ship        *obj.Ship
	formation   *obj.Formation
	playerShots *obj.BulletPool
	enemyShots  *obj.BulletPool
	resolver    *obj.Resolver
	director    *director.Director

	watcher    *prefabs.Watcher
	specsDirty bool

	titleUI *ebitenui.UI
	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI
}

func NewGame(debug bool) *Game {
	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Fatalf("load prefabs: %v", err)
	}

	g := &Game{
		debug: debug,
		scene: sceneTitle,
		specs: specs,
	}
	g.input = obj.NewInput()
	g.health = component.NewHealth(specs.Ship.Lives)
	g.score = component.NewScore(specs.Wave.ExtraLifeScore)
	g.score.OnExtraLife = func() { g.health.Heal(1) }
	g.ship = obj.NewShip(specs.Ship, g.input, g.health)
	g.formation = obj.NewFormation(specs.Wave)
	g.playerShots = obj.NewBulletPool(obj.CategoryPlayer, obj.DefForCategory(obj.CategoryPlayer, &specs.Bullets))
	g.enemyShots = obj.NewBulletPool(obj.CategoryEnemy, obj.DefForCategory(obj.CategoryEnemy, &specs.Bullets))
	g.resolver = obj.NewResolver(g.score, specs.Wave.KillScore)

	if d, err := director.New(); err != nil {
		log.Printf("director disabled: %v", err)
	} else {
		g.director = d
	}

	// Hot reload only works when a prefabs/ directory exists next to the
	// binary; the embedded specs still load without it.
	if w, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("prefab watch disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.titleUI = NewTitleUI(g)
	g.pauseUI = NewPauseUI(g)
	g.overUI = NewGameOverUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.drainWatcher()

	switch g.scene {
	case sceneTitle:
		g.titleUI.Update()
		if g.input.StartPressed {
			g.startRun()
		}
	case sceneGameOver:
		g.overUI.Update()
		if g.input.StartPressed {
			g.startRun()
		}
	case scenePlaying:
		if g.input.PausePressed {
			g.paused = !g.paused
		}
		if g.paused {
			g.pauseUI.Update()
			return nil
		}
		g.tick()
	}
	return nil
}

// tick runs one frame of play: move and prune everything, then resolve both
// projectile streams against their opposing category.
func (g *Game) tick() {
	g.health.Tick()
	g.ship.Update(g.playerShots)
	g.formation.Update(g.enemyShots)
	g.playerShots.Update()
	g.enemyShots.Update()

	g.resolver.ResolvePlayerShots(g.playerShots, g.formation)
	g.resolver.ResolveEnemyShots(g.enemyShots, g.ship)

	if !g.formation.AnyAlive() {
		g.nextWave()
		return
	}
	if g.formation.HasInvaded() || !g.health.Alive() {
		log.Printf("game over: score %d, wave %d", g.score.Current, g.formation.Wave())
		g.scene = sceneGameOver
	}
}

// startRun resets score, lives, and the wave counter for a fresh run.
func (g *Game) startRun() {
	g.health.Reset()
	g.score.Reset()
	g.ship.Reset()
	g.formation = obj.NewFormation(g.specs.Wave)
	g.paused = false
	g.scene = scenePlaying
	g.nextWave()
}

// nextWave applies pending spec reloads, consults the difficulty director,
// and populates the next formation with empty bullet pools.
func (g *Game) nextWave() {
	g.reloadSpecs()

	wave := g.formation.Wave() + 1
	tuning := director.DefaultTuning()
	if g.director != nil {
		tuning = g.director.TuningForWave(wave)
	}

	g.playerShots.Clear()
	g.enemyShots.Clear()

	cd := int(float64(g.enemyShots.BaseCooldownTicks()) * tuning.CooldownScale)
	if cd < 1 {
		cd = 1
	}
	g.enemyShots.SetCooldownTicks(cd)
	g.formation.Populate(tuning.SpeedScale)
	log.Printf("wave %d: speed x%.2f, enemy cooldown %d ticks", wave, tuning.SpeedScale, cd)
}

// reloadSpecs re-reads tuning touched on disk since the last wave. A bad
// edit keeps the previous specs running.
func (g *Game) reloadSpecs() {
	if !g.specsDirty {
		return
	}
	g.specsDirty = false

	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Printf("prefab reload rejected: %v", err)
		return
	}
	g.specs = specs
	g.formation.SetSpec(specs.Wave)
	g.playerShots = obj.NewBulletPool(obj.CategoryPlayer, obj.DefForCategory(obj.CategoryPlayer, &specs.Bullets))
	g.enemyShots = obj.NewBulletPool(obj.CategoryEnemy, obj.DefForCategory(obj.CategoryEnemy, &specs.Bullets))
	g.resolver.KillScore = specs.Wave.KillScore
	if g.director != nil {
		if err := g.director.Reload(); err != nil {
			log.Printf("director reload rejected: %v", err)
		}
	}
	log.Print("prefabs reloaded")
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			g.specsDirty = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefab watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.scene {
	case sceneTitle:
		g.titleUI.Draw(screen)
	case scenePlaying, sceneGameOver:
		g.formation.Draw(screen)
		g.playerShots.Draw(screen)
		g.enemyShots.Draw(screen)
		g.ship.Draw(screen)
		g.drawHUD(screen)
		if g.paused {
			g.pauseUI.Draw(screen)
		}
		if g.scene == sceneGameOver {
			g.overUI.Draw(screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  invaders: %d  shots: %d/%d",
			ebiten.ActualFPS(), g.formation.LiveCount(),
			len(g.playerShots.Items()), len(g.enemyShots.Items()),
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
