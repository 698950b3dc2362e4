package server

import (
	"log"

	"github.com/gofiber/websocket/v2"
)

const wsChunkSize = 10

type wsRequest struct {
	Listing   string `json:"listing"` // files, images or audio
	RequestID int    `json:"requestId"`
}

type wsMessage struct {
	RequestID int      `json:"requestId"`
	Items     []string `json:"items"`
	Error     string   `json:"error,omitempty"`
}

// handleWebSocket answers listing requests on a long-lived connection. Each
// answer is a series of chunks followed by an empty chunk.
func (s *Server) handleWebSocket(c *websocket.Conn) {
	defer c.Close()

	for {
		var req wsRequest
		if err := c.ReadJSON(&req); err != nil {
			log.Printf("WebSocket read error: %v", err)
			return
		}

		for _, msg := range s.listingMessages(req) {
			if err := c.WriteJSON(msg); err != nil {
				log.Printf("Error sending chunk: %v", err)
				return
			}
		}
	}
}

func (s *Server) listingMessages(req wsRequest) []wsMessage {
	listing, ok := s.listings[req.Listing]
	if !ok {
		return []wsMessage{{RequestID: req.RequestID, Items: []string{}, Error: "unknown listing: " + req.Listing}}
	}

	files, err := listing.List()
	if err != nil {
		log.Printf("Error reading listing %s: %v", listing, err)
		return []wsMessage{{RequestID: req.RequestID, Items: []string{}, Error: err.Error()}}
	}

	var msgs []wsMessage
	for _, items := range chunk(files, wsChunkSize) {
		msgs = append(msgs, wsMessage{RequestID: req.RequestID, Items: items})
	}
	return append(msgs, wsMessage{RequestID: req.RequestID, Items: []string{}})
}

func chunk(items []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, items[i:end])
	}
	return chunks
}
