package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/protocol"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Outbound buffer; a reveal blocks when it is full
	sendBuffer = 256
)

// ignoredReason is sent back for requests dropped during a run.
const ignoredReason = "run in progress"

// Connection is one websocket client and the board it owns.
type Connection struct {
	ws      *websocket.Conn
	server  *Server
	session *engine.Session
	send    chan []byte
}

// NewConnection wraps ws with a fresh session on grid.
func NewConnection(ws *websocket.Conn, s *Server, grid *gridgraph.Grid) *Connection {
	return &Connection{
		ws:     ws,
		server: s,
		session: engine.NewSession(grid,
			engine.WithFrontier(s.config.FrontierKind()),
			engine.WithTiming(s.config.Timing()),
		),
		send: make(chan []byte, sendBuffer),
	}
}

// Handle runs the read and write pumps until the peer leaves or the server
// shuts down. Reveals started by the read pump join the same group.
func (c *Connection) Handle() error {
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	g, ctx := errgroup.WithContext(c.server.ctx)
	g.Go(func() error { return c.writePump(ctx) })
	g.Go(func() error { return c.readPump(ctx, g) })

	err := g.Wait()
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
		return err
	}
	return nil
}

// readPump decodes commands and applies them to the session.
func (c *Connection) readPump(ctx context.Context, g *errgroup.Group) error {
	if err := c.sendBoard(ctx); err != nil {
		return err
	}
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return err
		}
		msg, err := protocol.Decode(data)
		if err != nil {
			if err := c.emit(ctx, protocol.NewError(msg.Type, err)); err != nil {
				return err
			}
			continue
		}
		if err := c.dispatch(ctx, g, msg); err != nil {
			return err
		}
	}
}

// writePump drains the send buffer and keeps the peer alive with pings.
func (c *Connection) writePump(ctx context.Context) error {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		case <-ctx.Done():
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return nil
		}
	}
}

// dispatch routes one decoded command.
func (c *Connection) dispatch(ctx context.Context, g *errgroup.Group, msg protocol.ClientMessage) error {
	if msg.Type == protocol.TypeRun {
		return c.handleRun(ctx, g, msg)
	}
	if c.session.Running() {
		return c.emit(ctx, protocol.NewIgnored(msg.Type, ignoredReason))
	}

	var (
		changed bool
		err     error
	)
	cell, _ := msg.Cell()
	switch msg.Type {
	case protocol.TypeToggleWall:
		changed, err = c.session.ToggleWall(cell)
	case protocol.TypeToggleWeight:
		changed, err = c.session.ToggleWeight(cell)
	case protocol.TypeMoveStart:
		changed, err = c.session.MoveStart(cell)
	case protocol.TypeMoveEnd:
		changed, err = c.session.MoveEnd(cell)
	case protocol.TypeClearPath:
		changed = c.session.ClearPath()
	case protocol.TypeClearBoard:
		changed = c.session.ClearBoard()
	}
	if err != nil {
		return c.emit(ctx, protocol.NewError(msg.Type, err))
	}
	if !changed {
		return nil
	}
	return c.sendBoard(ctx)
}

// handleRun computes the search and starts its reveal in the background.
func (c *Connection) handleRun(ctx context.Context, g *errgroup.Group, msg protocol.ClientMessage) error {
	alg := c.server.config.Algorithm()
	if msg.Algorithm != "" {
		parsed, err := search.ParseAlgorithm(msg.Algorithm)
		if err != nil {
			return c.emit(ctx, protocol.NewError(msg.Type, err))
		}
		alg = parsed
	}

	run, ok := c.session.Run(alg)
	if !ok {
		return c.emit(ctx, protocol.NewIgnored(msg.Type, ignoredReason))
	}
	if run.Err != nil {
		return c.emit(ctx, protocol.NewError(msg.Type, run.Err))
	}
	if err := c.sendBoard(ctx); err != nil {
		run.Release()
		return err
	}

	g.Go(func() error {
		err := run.Reveal(ctx, func(s visual.Step) error {
			return c.emit(ctx, protocol.NewStep(s))
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := c.emit(ctx, protocol.NewDone(run.Result)); err != nil {
			return err
		}
		return c.sendBoard(ctx)
	})

	return nil
}

// sendBoard queues the current board state.
func (c *Connection) sendBoard(ctx context.Context) error {
	grid, marks := c.session.Snapshot()
	return c.emit(ctx, protocol.NewBoard(grid, marks, c.session.Running()))
}

// emit encodes msg and queues it, waiting for buffer space.
func (c *Connection) emit(ctx context.Context, msg any) error {
	data, err := protocol.Encode(msg)
	if err != nil {
		c.server.logger.Printf("failed to marshal message: %v", err)
		return nil
	}
	select {
	case c.send <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
