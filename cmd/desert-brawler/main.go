package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/input"
	"github.com/lixenwraith/desert-brawler/parameter"
	"github.com/lixenwraith/desert-brawler/render"
	"github.com/lixenwraith/desert-brawler/system"
)

var seedFlag = flag.Int64("seed", 0, "spawn randomness seed, 0 uses current time")

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ndesert-brawler crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	ctx := engine.NewGameContext(seed)
	registerSystems(ctx)
	ctx.Reset()

	handler := input.NewHandler(ctx.World.Resources.Input)
	renderer := render.NewRenderer(screen, ctx.World)

	run(screen, ctx, handler, renderer)
}

// registerSystems wires every simulation phase in priority order
func registerSystems(ctx *engine.GameContext) {
	w := ctx.World
	ctx.AddSystem(system.NewActorInputSystem(w))
	ctx.AddSystem(system.NewActorStateSystem(w))
	ctx.AddSystem(system.NewMovementSystem(w))
	ctx.AddSystem(system.NewPursuerSystem(w))
	ctx.AddSystem(system.NewHitboxSystem(w))
	ctx.AddSystem(system.NewDamageSystem(w))
	ctx.AddSystem(system.NewStatusSystem(w))
	ctx.AddSystem(system.NewFlashSystem(w))
	ctx.AddSystem(system.NewAnimationSystem(w))
	ctx.AddSystem(system.NewRoundSystem(w))
}

// run drives the fixed-tick loop until quit
func run(screen tcell.Screen, ctx *engine.GameContext, handler *input.Handler, renderer *render.Renderer) {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch handler.HandleKey(ev, time.Now()) {
				case input.ActionQuit:
					return
				case input.ActionRestart:
					if ctx.World.Resources.Round.GameOver {
						handler.Reset()
						ctx.Reset()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			handler.Apply(time.Now())
			ctx.Step(parameter.TickInterval)
			renderer.Draw()
		}
	}
}
