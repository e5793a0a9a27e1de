package main

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader websocket.Upgrader

type watchMessage struct {
	Move    any    `json:"move,omitempty"`
	Outcome string `json:"outcome,omitempty"`
}

// handleWatchWs plays one game and streams its transcript move by
// move over a websocket, then reports the outcome and closes.
func handleWatchWs(w http.ResponseWriter, r *http.Request) {
	var params PlayParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	result, err := playGame(params)
	if err != nil {
		log.Error("play: ", err)
		return
	}
	for _, move := range result.Moves {
		if err := c.WriteJSON(watchMessage{Move: move}); err != nil {
			log.Error("write: ", err)
			return
		}
	}
	if err := c.WriteJSON(watchMessage{Outcome: result.Outcome.String()}); err != nil {
		log.Error("write: ", err)
		return
	}
	c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(
		websocket.CloseNormalClosure, "",
	))
}
