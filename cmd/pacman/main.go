package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sorensenNiels/neurAI-Pac/internal/game"
	"github.com/sorensenNiels/neurAI-Pac/internal/spectate"
)

func main() {
	listen := flag.String("listen", "", "optional address for the read-only spectator websocket, e.g. :8475")
	flag.Parse()

	g, err := game.New()
	if err != nil {
		log.Fatal(err)
	}

	if *listen != "" {
		hub := spectate.NewHub()
		g.SetPublisher(hub)
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Printf("spectator feed on ws://%s/ws", *listen)
			log.Fatal(http.ListenAndServe(*listen, mux))
		}()
	}

	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
