// Color action - drives the Trilobot according to the color of the ball in view
//
//	GREEN  forward for 3 seconds
//	YELLOW square path
//	BLUE   circular arc
//	RED    turn to keep the ball centered
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LeonardoGuevara/trilobot-examples/internal/cli"
	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

func main() {
	flags := cli.Register(flag.CommandLine)
	flag.Parse()
	flags.Apply()

	fmt.Println("🤖 Trilobot - Color Action")
	fmt.Println("==========================")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, flags); err != nil {
		log.Error("color action failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("\n👋 Goodbye!")
}

func run(ctx context.Context, flags *cli.Flags) error {
	src, err := flags.Source()
	if err != nil {
		return err
	}
	defer src.Close()

	det, err := vision.NewHough(vision.DefaultHoughConfig())
	if err != nil {
		return err
	}
	defer det.Close()

	cls := palette.NewClassifier(nil)
	defer cls.Close()

	bot, err := flags.Hardware()
	if err != nil {
		return err
	}
	defer bot.Close()

	loop, err := behavior.NewColorAction(src, det, cls, bot, nil, action.DefaultConfig(), flags.BehaviorConfig())
	if err != nil {
		return err
	}

	observers := behavior.Observers{&printer{}}
	if srv := flags.StartDashboard(); srv != nil {
		defer srv.Shutdown()
		observers = append(observers, srv)
	}
	loop.SetObserver(observers)

	log.Info("color action running", "run_id", loop.RunID())
	return loop.Run(ctx)
}

// printer prints state changes, not every cycle.
type printer struct {
	last behavior.Report
	seen bool
}

func (p *printer) OnReport(r behavior.Report) {
	defer func() { p.last, p.seen = r, true }()

	switch {
	case r.Circles == 0:
		if !p.seen || p.last.Circles != 0 {
			fmt.Println("🚫 No balls detected")
		}
	case !r.Color.Known():
		if !p.seen || p.last.Color != r.Color || p.last.Circles == 0 {
			fmt.Println("❓ Unknown color")
		}
	case r.Action.Terminal():
		fmt.Printf("✅ %s ball: %s completed\n", r.Color, r.Action)
	case r.Action == action.Tracking && r.Tracking != nil:
		fmt.Printf("🎯 Tracking %s ball at x=%d (v=%.2f)\n", r.Color, r.X, r.Tracking.Velocity)
	}

	if p.seen && p.last.Mode == action.ModeActiveTerminal && r.Mode == action.ModeIdle {
		fmt.Println("🔄 Ready for the next ball")
	}
}
