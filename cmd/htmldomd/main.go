// Command htmldomd is a tiny WebSocket front end for the parser: a client
// sends one text message containing HTML source, and the server replies
// with a JSON tag census or a JSON error.
package main

import (
	"flag"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dpotapov/htmldom"
	"github.com/dpotapov/htmldom/dom"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

type censusResponse struct {
	Tags  map[string]int `json:"tags,omitempty"`
	Error string         `json:"error,omitempty"`
}

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	http.HandleFunc("/parse", handleParse)

	slog.Info("htmldomd: listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		slog.Error("htmldomd: serve", "error", err)
	}
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("htmldomd: upgrade", "error", err)
		return
	}
	defer conn.Close()

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp := parseAndCensus(string(payload))
		if err := conn.WriteJSON(resp); err != nil {
			slog.Error("htmldomd: write response", "error", err)
			return
		}
	}
}

func parseAndCensus(src string) censusResponse {
	p := &htmldom.Parser{}
	doc, err := p.Parse(src)
	if err != nil {
		return censusResponse{Error: err.Error()}
	}
	return censusResponse{Tags: dom.Census(doc)}
}
