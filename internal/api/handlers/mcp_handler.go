package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"character-mcp-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

// MCPHandler serves the SSE transport: it owns the session registry,
// relays protocol responses over open streams and forwards posted messages
// into the protocol layer.
type MCPHandler struct {
	server    *server.MCPServer
	sessions  *session.Registry
	keepAlive time.Duration
}

// NewMCPHandler creates a new MCP transport handler. keepAlive is the
// interval between comment frames on idle streams; zero disables them.
func NewMCPHandler(mcpServer *server.MCPServer, sessions *session.Registry, keepAlive time.Duration) *MCPHandler {
	return &MCPHandler{
		server:    mcpServer,
		sessions:  sessions,
		keepAlive: keepAlive,
	}
}

// Sessions exposes the registry for liveness reporting.
func (h *MCPHandler) Sessions() *session.Registry {
	return h.sessions
}

// HandleSSE establishes the streaming connection, registers a session and
// relays protocol responses until the client disconnects.
// GET /sse
func (h *MCPHandler) HandleSSE(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	sess := h.sessions.Register()
	defer h.sessions.Remove(sess.ID)

	log.WithFields(log.Fields{
		"session": sess.ID,
		"client":  c.ClientIP(),
	}).Info("SSE connection established")

	// The first event tells the client where to post protocol messages for
	// this session.
	fmt.Fprintf(c.Writer, "event: endpoint\ndata: /messages?sessionId=%s\n\n", sess.ID)
	c.Writer.Flush()

	var keepAlive <-chan time.Time
	if h.keepAlive > 0 {
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()
		keepAlive = ticker.C
	}

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			log.WithField("session", sess.ID).Info("SSE connection closed")
			return
		case data, ok := <-sess.Events():
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", data)
			c.Writer.Flush()
		case <-keepAlive:
			// Comment frame so idle proxies keep the stream open
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			c.Writer.Flush()
		}
	}
}

// HandleMessage accepts a protocol message for an established session and
// forwards it to the protocol layer. The response travels back over the
// session's SSE stream.
// POST /messages?sessionId=...
func (h *MCPHandler) HandleMessage(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing sessionId",
			"message": "The sessionId query parameter is required",
		})
		return
	}

	sess, ok := h.sessions.Lookup(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Session not found",
			"message": fmt.Sprintf("No active session with id %q. Re-establish the SSE connection and use the endpoint it advertises.", sessionID),
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}

	response := h.server.HandleMessage(c.Request.Context(), body)
	if response != nil {
		data, err := json.Marshal(response)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to serialize response",
				"message": err.Error(),
			})
			return
		}
		if !sess.Send(data) {
			// The connection went away while the message was in flight;
			// the response is undeliverable and dropped.
			log.WithField("session", sessionID).Warn("dropping response for closed session")
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}
