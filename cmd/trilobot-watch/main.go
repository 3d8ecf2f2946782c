// Trilobot watch - tails the dashboard status stream of a running loop
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/LeonardoGuevara/trilobot-examples/internal/config"
	"github.com/LeonardoGuevara/trilobot-examples/internal/httpc"
	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/web"
)

func main() {
	host := flag.String("host", "localhost", "Robot host name or IP")
	port := flag.String("port", config.String("TRILOBOT_DASHBOARD_PORT", config.DefaultDashboardPort), "Dashboard port")
	asJSON := flag.Bool("json", false, "Print raw JSON reports")
	flag.Parse()
	log.Init(config.LogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watch(ctx, *host, *port, *asJSON); err != nil {
		log.Error("watch failed", "error", err)
		os.Exit(1)
	}
}

func watch(ctx context.Context, host, port string, asJSON bool) error {
	var health web.Health
	healthURL := fmt.Sprintf("http://%s:%s/api/health", host, port)
	if err := httpc.GetJSON(ctx, healthURL, &health); err != nil {
		return fmt.Errorf("dashboard not reachable: %w", err)
	}
	fmt.Printf("🔌 Connected to %s:%s (up %s, %d cycles)\n", host, port, health.Uptime, health.Cycles)

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.DialContext(ctx, config.DashboardURL(host, port)+"/ws/status", nil)
	if err != nil {
		return fmt.Errorf("status stream: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage on shutdown
	go func() {
		<-ctx.Done()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("status stream: %w", err)
		}

		if asJSON {
			fmt.Println(string(data))
			continue
		}

		var r behavior.Report
		if err := json.Unmarshal(data, &r); err != nil {
			log.Warn("bad report", "error", err)
			continue
		}
		fmt.Println(formatReport(r))
	}
}

func formatReport(r behavior.Report) string {
	ts := r.Time.Format("15:04:05.000")
	switch {
	case r.Loop == behavior.LoopBallCount && r.Gated:
		return fmt.Sprintf("%s #%d 🚫 out of range", ts, r.Cycle)
	case r.Loop == behavior.LoopBallCount:
		return fmt.Sprintf("%s #%d ⚽ %d balls at %.1fcm", ts, r.Cycle, r.Circles, r.Distance)
	case r.Circles == 0:
		return fmt.Sprintf("%s #%d 🚫 no balls [%s]", ts, r.Cycle, r.Mode)
	default:
		return fmt.Sprintf("%s #%d 🎱 %s x=%d → %s [%s]", ts, r.Cycle, r.Color, r.X, r.Action, r.Mode)
	}
}
