// README: Travel estimate request, result and structured error types.
package estimate

// Request is the traveller's input. No field is validated beyond its JSON type.
type Request struct {
	Location      string
	Accommodation string
	People        int
	Season        string
}

// Result is a successful estimate. Ranges are whole USD amounts as written by the model.
type Result struct {
	LowStart  int    `json:"low_estimate_start"`
	LowEnd    int    `json:"low_estimate_end"`
	HighStart int    `json:"high_estimate_start"`
	HighEnd   int    `json:"high_estimate_end"`
	Notes     string `json:"notes"`
}

// Ranges are the four bounds pulled out of a model reply.
type Ranges struct {
	LowStart  int
	LowEnd    int
	HighStart int
	HighEnd   int
}

type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindTransport     ErrorKind = "transport"
	KindDecode        ErrorKind = "decode"
	KindContract      ErrorKind = "contract"
	KindExtraction    ErrorKind = "extraction"
)

const (
	MsgMissingAPIKey   = "Missing OpenRouter API key."
	MsgUpstreamFailed  = "Upstream request failed"
	MsgInvalidJSON     = "Invalid JSON returned"
	MsgMissingChoices  = "No 'choices' key in OpenRouter response"
	MsgEmptyChoices    = "Empty 'choices' in OpenRouter response"
	MsgUnparsableRange = "Could not parse estimate ranges from model output"
)

// Error is a failed estimate. Exactly one diagnostic field is set, depending on Kind:
// Detail for transport and decode, FullResponse for contract, Raw for extraction.
type Error struct {
	Kind         ErrorKind
	Message      string
	Detail       string
	FullResponse any
	Raw          string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Payload renders the error as the JSON body returned to callers.
func (e *Error) Payload() map[string]any {
	out := map[string]any{"error": e.Message}
	switch e.Kind {
	case KindTransport, KindDecode:
		out["detail"] = e.Detail
	case KindContract:
		out["full_response"] = e.FullResponse
	case KindExtraction:
		out["raw"] = e.Raw
	}
	return out
}
