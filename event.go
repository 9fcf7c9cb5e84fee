package latitude

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tmaxmax/go-sse"
)

// SSE event names used by the gateway on streamed runs.
const (
	latitudeEventName = "latitude-event"
	providerEventName = "provider-event"
)

// Event is a single event from a streamed run. The concrete type is one of
// the chain events emitted by Latitude itself (ChainStepEvent,
// ChainStepCompleteEvent, ChainCompleteEvent), one of the events forwarded
// from the AI provider (TextDeltaEvent, ToolCallEvent, ToolResultEvent,
// StepFinishEvent, FinishEvent, ErrorEvent), or UnknownEvent for anything the
// SDK does not recognize.
type Event interface {
	eventType() string
}

// StepMessage is a message attached to a chain event. Unlike Message, the
// content arrives as a plain string on the wire.
type StepMessage struct {
	Role      Role       `json:"role"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
	Content   string     `json:"content"`
}

// ModelConfig names the provider and model a chain step runs on.
type ModelConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// ToolCall is a call to an external tool requested by the model.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Usage carries the token counts of a generation as reported inside stream
// events. The buffered run endpoint reports usage through UsageDetail, which
// uses a different wire casing.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// EventResponse is the generated response attached to chain events.
type EventResponse struct {
	StreamType      string     `json:"streamType,omitempty"`
	DocumentLogUUID string     `json:"documentLogUuid,omitempty"`
	Text            string     `json:"text"`
	ToolCalls       []ToolCall `json:"toolCalls,omitempty"`
	Usage           Usage      `json:"usage"`
}

// ProviderMeta is the provider's metadata for a finished generation.
type ProviderMeta struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ModelID   string    `json:"modelId"`
}

// FinishReason tells why the provider stopped generating.
type FinishReason string

// Finish reasons reported by providers.
const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonContentFilter FinishReason = "content-filter"
	FinishReasonToolCalls     FinishReason = "tool-calls"
	FinishReasonError         FinishReason = "error"
	FinishReasonOther         FinishReason = "other"
	FinishReasonUnknown       FinishReason = "unknown"
)

// ChainStepEvent announces a step of the execution chain before it runs.
type ChainStepEvent struct {
	IsLastStep bool          `json:"isLastStep"`
	Config     ModelConfig   `json:"config"`
	Messages   []StepMessage `json:"messages"`
	UUID       uuid.UUID     `json:"uuid"`
}

// ChainStepCompleteEvent reports the response of a finished chain step.
type ChainStepCompleteEvent struct {
	Response EventResponse `json:"response"`
	UUID     string        `json:"uuid"`
}

// ChainCompleteEvent closes the stream with the final response of the chain.
type ChainCompleteEvent struct {
	Config   ModelConfig   `json:"config"`
	Response EventResponse `json:"response"`
	Messages []StepMessage `json:"messages"`
}

// TextDeltaEvent carries an incremental piece of generated text.
type TextDeltaEvent struct {
	TextDelta string `json:"textDelta"`
}

// ToolCallEvent reports that the model requested a tool call.
type ToolCallEvent struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Args       json.RawMessage `json:"args"`
}

// ToolResultEvent carries the result of an executed tool call.
type ToolResultEvent struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	Result     json.RawMessage `json:"result"`
}

// StepFinishEvent reports that the provider finished a generation step.
type StepFinishEvent struct {
	FinishReason FinishReason `json:"finishReason"`
	Usage        Usage        `json:"usage"`
	Response     ProviderMeta `json:"response"`
	IsContinued  bool         `json:"isContinued"`
}

// FinishEvent reports that the provider finished the whole generation.
type FinishEvent struct {
	FinishReason FinishReason `json:"finishReason"`
	Usage        Usage        `json:"usage"`
	Response     ProviderMeta `json:"response"`
	IsContinued  *bool        `json:"isContinued,omitempty"`
}

// ErrorEvent reports an error raised by the provider mid-stream.
type ErrorEvent struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// UnknownEvent preserves events the SDK does not recognize, keeping the raw
// payload available to the caller.
type UnknownEvent struct {
	Name string
	Data string
}

func (ChainStepEvent) eventType() string         { return "chain-step" }
func (ChainStepCompleteEvent) eventType() string { return "chain-step-complete" }
func (ChainCompleteEvent) eventType() string     { return "chain-complete" }
func (TextDeltaEvent) eventType() string         { return "text-delta" }
func (ToolCallEvent) eventType() string          { return "tool-call" }
func (ToolResultEvent) eventType() string        { return "tool-result" }
func (StepFinishEvent) eventType() string        { return "step-finish" }
func (FinishEvent) eventType() string            { return "finish" }
func (ErrorEvent) eventType() string             { return "error" }
func (UnknownEvent) eventType() string           { return "unknown" }

// decodeEvent maps a raw SSE event to its typed form. Events with a known
// name but an undecodable payload are dropped, mirroring the gateway
// contract that payloads of named events are always well-formed JSON.
func decodeEvent(ev sse.Event, logger *slog.Logger) (Event, bool) {
	switch ev.Type {
	case latitudeEventName:
		return decodeLatitudeEvent(string(ev.Data), logger)
	case providerEventName:
		return decodeProviderEvent(string(ev.Data), logger)
	default:
		return UnknownEvent{Name: string(ev.Type), Data: string(ev.Data)}, true
	}
}

func decodeLatitudeEvent(data string, logger *slog.Logger) (Event, bool) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(data), &head); err != nil {
		logger.Error("failed to decode latitude event", "err", err)
		return nil, false
	}

	switch head.Type {
	case "chain-step":
		return unmarshalEvent[ChainStepEvent](data, logger)
	case "chain-step-complete":
		return unmarshalEvent[ChainStepCompleteEvent](data, logger)
	case "chain-complete":
		return unmarshalEvent[ChainCompleteEvent](data, logger)
	default:
		return UnknownEvent{Name: latitudeEventName, Data: data}, true
	}
}

func decodeProviderEvent(data string, logger *slog.Logger) (Event, bool) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(data), &head); err != nil {
		logger.Error("failed to decode provider event", "err", err)
		return nil, false
	}

	switch head.Type {
	case "text-delta":
		return unmarshalEvent[TextDeltaEvent](data, logger)
	case "tool-call":
		return unmarshalEvent[ToolCallEvent](data, logger)
	case "tool-result":
		return unmarshalEvent[ToolResultEvent](data, logger)
	case "step-finish":
		return unmarshalEvent[StepFinishEvent](data, logger)
	case "finish":
		return unmarshalEvent[FinishEvent](data, logger)
	case "error":
		return unmarshalEvent[ErrorEvent](data, logger)
	default:
		return UnknownEvent{Name: providerEventName, Data: data}, true
	}
}

func unmarshalEvent[T Event](data string, logger *slog.Logger) (Event, bool) {
	var ev T
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		logger.Error("failed to decode stream event", "err", err)
		return nil, false
	}
	return ev, true
}
