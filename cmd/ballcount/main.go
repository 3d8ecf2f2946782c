// Ball counter - counts balls in view whenever something comes within 50cm
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
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

func main() {
	flags := cli.Register(flag.CommandLine)
	flag.Parse()
	flags.Apply()

	fmt.Println("🤖 Trilobot - Ball Counter")
	fmt.Println("==========================")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, flags); err != nil {
		log.Error("ball counter failed", "error", err)
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

	bot, err := flags.Hardware()
	if err != nil {
		return err
	}
	defer bot.Close()

	counter, err := behavior.NewBallCounter(src, det, bot, nil, flags.BehaviorConfig())
	if err != nil {
		return err
	}

	observers := behavior.Observers{behavior.ObserverFunc(printCount)}
	if srv := flags.StartDashboard(); srv != nil {
		defer srv.Shutdown()
		observers = append(observers, srv)
	}
	counter.SetObserver(observers)

	log.Info("ball counter running", "run_id", counter.RunID())
	return counter.Run(ctx)
}

func printCount(r behavior.Report) {
	if r.Gated {
		fmt.Println("🚫 No balls detected")
		return
	}
	fmt.Printf("⚽ Number of balls: %d (%.1f cm)\n", r.Circles, r.Distance)
}
