package protocol

import (
	"github.com/invopop/jsonschema"
)

// Catalog groups every message so one schema document describes the protocol.
type Catalog struct {
	Client  ClientMessage  `json:"client" jsonschema:"title=Client message,description=Any inbound command"`
	Board   BoardMessage   `json:"board" jsonschema:"title=Board state"`
	Step    StepMessage    `json:"step" jsonschema:"title=Reveal step"`
	Done    DoneMessage    `json:"done" jsonschema:"title=Run summary"`
	Error   ErrorMessage   `json:"error" jsonschema:"title=Error"`
	Ignored IgnoredMessage `json:"ignored" jsonschema:"title=Ignored request"`
}

// Schema reflects the message catalog into a JSON Schema document.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(Catalog))
	schema.Title = "gridpath websocket protocol"
	schema.Description = "Messages exchanged on /ws; each property documents one message shape"
	return schema
}
