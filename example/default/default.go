package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/handler"
	"github.com/oomph-ac/immersion/interaction"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/settings"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
	"github.com/oomph-ac/immersion/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// The following program plays a client dragging a stack of sticks over the grid of a crafting table and
// clicking the book of an enchanting table, with the messages it produces handled by a server.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./bin <settings_file>")
		return
	}
	path := os.Args[1]
	if err := settings.SaveDefault(path); err == nil {
		fmt.Println("Created default settings at", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		panic(err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(s.Level())

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			panic(err)
		}
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}
	reg := prometheus.NewRegistry()
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go func() {
			if err := http.ListenAndServe(addr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	server := world.New(log)
	tablePos, bookPos := df_cube.Pos{0, 64, 0}, df_cube.Pos{3, 64, 0}
	for name, pos := range map[string]df_cube.Pos{"minecraft:crafting_table": tablePos, "minecraft:enchanting_table": bookPos} {
		if _, err := server.Place(name, pos, df_cube.North); err != nil {
			panic(err)
		}
	}
	h := handler.New(server, log, s, handler.NewMetrics(reg))
	defer h.Close()

	// The client gets its own copy of the tiles, the same way it would receive them from the server.
	client := world.New(log)
	buf := bytes.NewBuffer(nil)
	if _, err := server.Save(buf, false); err != nil {
		panic(err)
	}
	client.Load(buf)

	p := &demoPlayer{id: uuid.New(), held: item.NewStack(item.Stick{}, 10), log: log}
	p.pos, p.pitch = mgl32.Vec3{0.5, 64, -1.2}, 40
	h.Join(p)
	defer h.Quit(p)

	m := interaction.NewMachine(log)
	t, _ := client.Tile(tablePos)
	for i, cell := range []mgl32.Vec3{{0.8, 1, 0.7}, {0.6, 1, 0.7}, {0.4, 1, 0.7}, {0.4, 1, 0.5}, {0.4, 1, 0.5}} {
		target := mgl32.Vec3{float32(tablePos.X()) + cell.X(), float32(tablePos.Y()) + cell.Y(), float32(tablePos.Z()) + cell.Z()}
		ray := omath.NewRay(p.eye(), target.Sub(p.eye()), s.Interaction.Reach)
		hovered := util.BlockPosOf(target.Sub(mgl32.Vec3{0, 0.001, 0}))
		in := interaction.TickInput{
			Ray:         ray,
			Hovered:     &interaction.Hovered{Pos: hovered, Tile: t, Point: target},
			UseDown:     i < 4,
			Held:        p.held,
			WorldLoaded: true,
		}
		send(h, p, m.Tick(in))
		log.Infof("tick %d: %v, preview %v", i, m.State(), m.Preview())
	}
	h.Flush()

	server.Tick([]mgl32.Vec3{p.eye()}, float32(s.Interaction.ScanRadius))
	client.Tick([]mgl32.Vec3{p.eye()}, float32(s.Interaction.ScanRadius))
	h.Tick()
	h.Flush()
	candidates := client.BookCandidates(bookPos, s.Interaction.ScanRadius)
	log.Infof("%d enchanting table(s) near the player", len(candidates))

	st, _ := server.Tile(tablePos)
	log.Infof("crafting grid after dragging: %v, player holds %v", st.(*tile.CraftingTable).Inventory().Slots(), p.held)
}

// send encodes the messages passed and hands them to the server the way they arrive over the network.
func send(h *handler.Handler, p *demoPlayer, msgs []message.Message) {
	for _, msg := range msgs {
		h.HandleRaw(p, message.Encode(msg))
	}
}

type demoPlayer struct {
	id         uuid.UUID
	held       item.Stack
	pos        mgl32.Vec3
	yaw, pitch float32
	log        *logrus.Logger
}

func (p *demoPlayer) eye() mgl32.Vec3 {
	return p.pos.Add(mgl32.Vec3{0, game.DefaultPlayerHeightOffset, 0})
}

func (p *demoPlayer) UUID() uuid.UUID      { return p.id }
func (p *demoPlayer) Name() string         { return "demo" }
func (p *demoPlayer) Held() item.Stack     { return p.held }
func (p *demoPlayer) SetHeld(s item.Stack) { p.held = s }
func (p *demoPlayer) EyeRay() omath.Ray {
	return omath.NewRay(p.eye(), game.DirectionVector(p.yaw, p.pitch), 0)
}
func (p *demoPlayer) Send(msg message.Message) {
	p.log.Infof("server -> client: %T %+v", msg, msg)
}
