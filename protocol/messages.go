// Package protocol defines the JSON messages exchanged over the gridpath websocket.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

// Version tracks the wire-protocol revision expected by clients.
const Version = 1

// Client message type identifiers.
const (
	TypeRun          = "run"
	TypeToggleWall   = "toggle_wall"
	TypeToggleWeight = "toggle_weight"
	TypeMoveStart    = "move_start"
	TypeMoveEnd      = "move_end"
	TypeClearPath    = "clear_path"
	TypeClearBoard   = "clear_board"
)

// Server message type identifiers.
const (
	TypeBoard   = "board"
	TypeStep    = "step"
	TypeDone    = "done"
	TypeError   = "error"
	TypeIgnored = "ignored"
)

var (
	// ErrUnknownType is returned by Decode for an unrecognised "type".
	ErrUnknownType = errors.New("protocol: unknown message type")
	// ErrMissingCell is returned by Decode when a cell command has no row/col.
	ErrMissingCell = errors.New("protocol: message requires row and col")
)

// ClientMessage captures an inbound websocket message from the client.
type ClientMessage struct {
	Ver       int    `json:"ver,omitempty" jsonschema:"description=Protocol version; 0 means current"`
	Type      string `json:"type" jsonschema:"required,enum=run,enum=toggle_wall,enum=toggle_weight,enum=move_start,enum=move_end,enum=clear_path,enum=clear_board"`
	Algorithm string `json:"algorithm,omitempty" jsonschema:"description=Algorithm for run: bfs dijkstra or astar"`
	Row       *int   `json:"row,omitempty" jsonschema:"minimum=0"`
	Col       *int   `json:"col,omitempty" jsonschema:"minimum=0"`
}

// Cell returns the addressed cell; ok is false when row or col is missing.
func (m ClientMessage) Cell() (c gridgraph.Cell, ok bool) {
	if m.Row == nil || m.Col == nil {
		return gridgraph.Cell{}, false
	}
	return gridgraph.Cell{Row: *m.Row, Col: *m.Col}, true
}

// NeedsCell reports whether the message type addresses a single cell.
func NeedsCell(msgType string) bool {
	switch msgType {
	case TypeToggleWall, TypeToggleWeight, TypeMoveStart, TypeMoveEnd:
		return true
	default:
		return false
	}
}

// CellPayload is a board position on the wire.
type CellPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func cellPayload(c gridgraph.Cell) CellPayload {
	return CellPayload{Row: c.Row, Col: c.Col}
}

// BoardMessage is the full board state, sent on connect and after every change.
type BoardMessage struct {
	Ver     int         `json:"ver"`
	Type    string      `json:"type"`
	Height  int         `json:"height"`
	Width   int         `json:"width"`
	Rows    []string    `json:"rows" jsonschema:"description=Terrain layout using . # w S E"`
	Overlay []string    `json:"overlay" jsonschema:"description=Rows with visited (o) and path (*) marks painted on"`
	Start   CellPayload `json:"start"`
	End     CellPayload `json:"end"`
	Running bool        `json:"running"`
}

// StepMessage reveals one visited or path cell.
type StepMessage struct {
	Ver   int    `json:"ver"`
	Type  string `json:"type"`
	Phase string `json:"phase" jsonschema:"enum=visited,enum=path"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Index int    `json:"index"`
}

// DoneMessage summarises a finished run after its reveal.
type DoneMessage struct {
	Ver       int           `json:"ver"`
	Type      string        `json:"type"`
	Algorithm string        `json:"algorithm"`
	Outcome   string        `json:"outcome" jsonschema:"enum=found,enum=exhausted"`
	Visited   int           `json:"visited"`
	Cost      int           `json:"cost"`
	Path      []CellPayload `json:"path"`
}

// ErrorMessage reports a rejected request.
type ErrorMessage struct {
	Ver     int    `json:"ver"`
	Type    string `json:"type"`
	Request string `json:"request,omitempty"`
	Message string `json:"message"`
}

// IgnoredMessage reports a request dropped because a run is in flight.
type IgnoredMessage struct {
	Ver     int    `json:"ver"`
	Type    string `json:"type"`
	Request string `json:"request"`
	Reason  string `json:"reason"`
}

// NewBoard snapshots g and its overlay.
func NewBoard(g *gridgraph.Grid, m *visual.Marks, running bool) BoardMessage {
	return BoardMessage{
		Ver:     Version,
		Type:    TypeBoard,
		Height:  g.Height,
		Width:   g.Width,
		Rows:    g.Rows(),
		Overlay: visual.Overlay(g, m),
		Start:   cellPayload(g.Start()),
		End:     cellPayload(g.End()),
		Running: running,
	}
}

// NewStep wraps one reveal step.
func NewStep(s visual.Step) StepMessage {
	return StepMessage{
		Ver:   Version,
		Type:  TypeStep,
		Phase: s.Phase.String(),
		Row:   s.Cell.Row,
		Col:   s.Cell.Col,
		Index: s.Index,
	}
}

// NewDone summarises res.
func NewDone(res *search.Result) DoneMessage {
	path := make([]CellPayload, 0, len(res.Path))
	for _, c := range res.Path {
		path = append(path, cellPayload(c))
	}
	return DoneMessage{
		Ver:       Version,
		Type:      TypeDone,
		Algorithm: string(res.Algorithm),
		Outcome:   res.Outcome.String(),
		Visited:   len(res.Visited),
		Cost:      res.Cost,
		Path:      path,
	}
}

// NewError reports err for the request of type req.
func NewError(req string, err error) ErrorMessage {
	return ErrorMessage{Ver: Version, Type: TypeError, Request: req, Message: err.Error()}
}

// NewIgnored reports that req was dropped.
func NewIgnored(req, reason string) IgnoredMessage {
	return IgnoredMessage{Ver: Version, Type: TypeIgnored, Request: req, Reason: reason}
}

// Encode renders any server message as JSON.
func Encode(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode: %w", err)
	}
	return data, nil
}

// Decode parses and checks an inbound message.
func Decode(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("protocol: decode: %w", err)
	}
	switch msg.Type {
	case TypeRun, TypeClearPath, TypeClearBoard:
	case TypeToggleWall, TypeToggleWeight, TypeMoveStart, TypeMoveEnd:
		if _, ok := msg.Cell(); !ok {
			return msg, fmt.Errorf("%w: %s", ErrMissingCell, msg.Type)
		}
	default:
		return msg, fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}

	return msg, nil
}
