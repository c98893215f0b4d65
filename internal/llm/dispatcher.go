package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Handler executes one registered function. It returns a JSON-shaped map:
// {"success": true, "data": {...}} or {"error": "..."}.
type Handler func(args map[string]any, sessionID string) map[string]any

// Errorf builds the error result shape handlers and the dispatcher share.
func Errorf(format string, a ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, a...)}
}

// Success wraps handler data in the success result shape.
func Success(data map[string]any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

// Function is one registered tool.
type Function struct {
	Name        string
	Description string
	Parameters  map[string]any
	handler     Handler
}

// ToolCallResult is the outcome of one executed tool call.
type ToolCallResult struct {
	ToolCallID   string         `json:"tool_call_id"`
	FunctionName string         `json:"function_name"`
	Result       map[string]any `json:"result"`
}

// Callback receives the LLM response. resultType is
// "function_calls_executed", "message" or "" for errors; errors carry the
// reason in response["error"].
type Callback func(response map[string]any, resultType string, results []ToolCallResult)

// cooldownGate is the slice of the session manager the dispatcher needs:
// per-action cooldowns and activity touches.
type cooldownGate interface {
	CheckActionCooldown(sessionID, action string) bool
	SetActionCooldown(sessionID, action string)
	TouchActivity(sessionID string)
}

// Dispatcher owns the tool registry and the asynchronous tool-calling loop
// against a provider.
type Dispatcher struct {
	mu        sync.RWMutex
	functions map[string]*Function
	order     []string

	gate cooldownGate
	log  *slog.Logger
}

func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		functions: make(map[string]*Function),
		log:       log,
	}
}

// SetCooldownGate wires the session manager in after construction; the two
// reference each other.
func (d *Dispatcher) SetCooldownGate(gate cooldownGate) { d.gate = gate }

// Register adds a tool to the registry. Re-registering a name replaces it.
func (d *Dispatcher) Register(name, description string, parameters map[string]any, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.functions[name]; !exists {
		d.order = append(d.order, name)
	}
	d.functions[name] = &Function{
		Name:        name,
		Description: description,
		Parameters:  parameters,
		handler:     handler,
	}
}

// Functions returns the registered tools in registration order.
func (d *Dispatcher) Functions() []*Function {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Function, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.functions[name])
	}
	return out
}

// ToolsArray renders the registry in OpenAI tools format.
func (d *Dispatcher) ToolsArray() []map[string]any {
	fns := d.Functions()
	out := make([]map[string]any, 0, len(fns))
	for _, fn := range fns {
		out = append(out, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        fn.Name,
				"description": fn.Description,
				"parameters":  fn.Parameters,
			},
		})
	}
	return out
}

// Execute runs one registered function, enforcing the per-action cooldown.
func (d *Dispatcher) Execute(name string, args map[string]any, sessionID string) (result map[string]any) {
	d.mu.RLock()
	fn, ok := d.functions[name]
	d.mu.RUnlock()
	if !ok {
		return Errorf("Function not found: %s", name)
	}

	if sessionID != "" && d.gate != nil {
		if !d.gate.CheckActionCooldown(sessionID, name) {
			return Errorf("Action %s is on cooldown", name)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("tool handler panicked", "tool", name, "panic", r)
			result = Errorf("Function execution failed: %v", r)
		}
	}()

	_, span := otel.Tracer("botmaster/llm").Start(context.Background(), "tool."+name)
	span.SetAttributes(attribute.String("session_id", sessionID))
	result = fn.handler(args, sessionID)
	span.End()

	if sessionID != "" && d.gate != nil {
		d.gate.SetActionCooldown(sessionID, name)
		d.gate.TouchActivity(sessionID)
	}
	return result
}

// CallWithToolsAsync posts the conversation to the provider on its own
// goroutine. Tool calls in the reply are executed in order before the
// callback fires; the callback may run on any goroutine.
func (d *Dispatcher) CallWithToolsAsync(ctx context.Context, messages []Message, provider *Provider, cb Callback, sessionID string) {
	if provider == nil {
		cb(Errorf("No LLM provider specified"), "", nil)
		return
	}
	tools := d.ToolsArray()

	go func() {
		tctx, span := otel.Tracer("botmaster/llm").Start(ctx, "llm.chat")
		span.SetAttributes(
			attribute.String("provider", provider.Name),
			attribute.String("model", provider.Model),
			attribute.Int("messages", len(messages)),
		)
		resp, err := provider.Chat(tctx, messages, tools)
		span.End()

		if err != nil {
			cb(Errorf("%v", err), "", nil)
			return
		}

		respMap := responseToMap(resp)
		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			cb(respMap, "message", nil)
			return
		}

		results := make([]ToolCallResult, 0, len(msg.ToolCalls))
		for _, call := range msg.ToolCalls {
			if call.Type != "" && call.Type != "function" {
				continue
			}
			args := make(map[string]any)
			if call.Function.Arguments != "" {
				// Bad argument JSON is surfaced to the tool as empty args;
				// the handler reports the missing parameters itself.
				_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
			}
			results = append(results, ToolCallResult{
				ToolCallID:   call.ID,
				FunctionName: call.Function.Name,
				Result:       d.Execute(call.Function.Name, args, sessionID),
			})
		}
		cb(respMap, "function_calls_executed", results)
	}()
}

// CreateFunctionCallMessages synthesises the role=tool follow-up messages
// for executed calls. Content must be a string, not an object.
func CreateFunctionCallMessages(results []ToolCallResult) []Message {
	out := make([]Message, 0, len(results))
	for _, r := range results {
		content, err := json.Marshal(r.Result)
		if err != nil {
			content = []byte(`{"error":"unserialisable tool result"}`)
		}
		out = append(out, Message{
			Role:       "tool",
			ToolCallID: r.ToolCallID,
			Content:    string(content),
		})
	}
	return out
}

// responseToMap reshapes the typed response into the raw JSON form the
// session log and callbacks expose.
func responseToMap(resp *ChatResponse) map[string]any {
	data, err := json.Marshal(resp)
	if err != nil {
		return Errorf("unserialisable response")
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return Errorf("unserialisable response")
	}
	return out
}
