package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lexkeep/lexkeep/session"
)

// countingHandler wraps a handler with an invocation counter.
type countingHandler struct {
	calls   int
	handler Handler
}

func (c *countingHandler) handle(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
	c.calls++
	if c.handler != nil {
		return c.handler(ctx, sess, args)
	}
	return nil, "ok", nil
}

func newTestDispatcher(t *testing.T, descriptors ...Descriptor) *Dispatcher {
	t.Helper()
	registry, err := NewRegistry(descriptors...)
	if err != nil {
		t.Fatalf("Failed to build registry: %v", err)
	}
	return NewDispatcher(registry)
}

func TestDispatchUnknownTool(t *testing.T) {
	counter := &countingHandler{}
	d := newTestDispatcher(t, Descriptor{Name: "known", Handler: counter.handle})

	result := d.Dispatch(context.Background(), "nonexistent", nil, session.New())
	if result.Success {
		t.Fatal("Expected failure for unknown tool")
	}
	if result.Kind != KindUnknownTool {
		t.Errorf("Expected kind %s, got %s", KindUnknownTool, result.Kind)
	}
	if counter.calls != 0 {
		t.Errorf("Adapter was invoked %d times for an unknown tool", counter.calls)
	}
}

func TestDispatchMissingRequiredNeverInvokesAdapter(t *testing.T) {
	counter := &countingHandler{}
	d := newTestDispatcher(t, Descriptor{
		Name: "echo",
		Parameters: []ParamSpec{
			{Name: "text", Type: ParamString, Required: true},
		},
		Handler: counter.handle,
	})

	result := d.Dispatch(context.Background(), "echo", json.RawMessage(`{}`), session.New())
	if result.Success {
		t.Fatal("Expected validation failure")
	}
	if result.Kind != KindValidation {
		t.Errorf("Expected kind %s, got %s", KindValidation, result.Kind)
	}
	if !strings.Contains(result.Message, "text") {
		t.Errorf("Expected message to name the missing parameter, got %q", result.Message)
	}
	if counter.calls != 0 {
		t.Errorf("Adapter was invoked %d times despite validation failure", counter.calls)
	}
}

func TestDispatchWrongTypeNeverInvokesAdapter(t *testing.T) {
	counter := &countingHandler{}
	d := newTestDispatcher(t, Descriptor{
		Name: "lookup",
		Parameters: []ParamSpec{
			{Name: "caseId", Type: ParamInt, Required: true},
		},
		Handler: counter.handle,
	})

	for _, raw := range []string{`{"caseId":"five"}`, `{"caseId":1.5}`, `{"caseId":true}`} {
		result := d.Dispatch(context.Background(), "lookup", json.RawMessage(raw), session.New())
		if result.Kind != KindValidation {
			t.Errorf("Args %s: expected kind %s, got %s", raw, KindValidation, result.Kind)
		}
	}
	if counter.calls != 0 {
		t.Errorf("Adapter was invoked %d times despite validation failures", counter.calls)
	}
}

func TestDispatchOutOfEnumNeverInvokesAdapter(t *testing.T) {
	counter := &countingHandler{}
	d := newTestDispatcher(t, Descriptor{
		Name: "set_status",
		Parameters: []ParamSpec{
			{Name: "status", Type: ParamString, Required: true, Enum: []string{"active", "closed"}},
		},
		Handler: counter.handle,
	})

	result := d.Dispatch(context.Background(), "set_status", json.RawMessage(`{"status":"archived"}`), session.New())
	if result.Kind != KindValidation {
		t.Errorf("Expected kind %s, got %s", KindValidation, result.Kind)
	}
	if counter.calls != 0 {
		t.Errorf("Adapter was invoked %d times despite enum failure", counter.calls)
	}
}

func TestDispatchWithoutSession(t *testing.T) {
	counter := &countingHandler{}
	d := newTestDispatcher(t, Descriptor{Name: "noop", Handler: counter.handle})

	result := d.Dispatch(context.Background(), "noop", nil, session.Session{})
	if result.Kind != KindUnauthorized {
		t.Errorf("Expected kind %s, got %s", KindUnauthorized, result.Kind)
	}
	if counter.calls != 0 {
		t.Errorf("Adapter was invoked %d times without a session", counter.calls)
	}
}

func TestDispatchDefaultInjection(t *testing.T) {
	var got string
	d := newTestDispatcher(t, Descriptor{
		Name: "rank",
		Parameters: []ParamSpec{
			{Name: "importance", Type: ParamString, Enum: []string{"low", "medium", "high"}, Default: "medium"},
		},
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			got = args.String("importance")
			return nil, "ok", nil
		},
	})

	result := d.Dispatch(context.Background(), "rank", json.RawMessage(`{}`), session.New())
	if !result.Success {
		t.Fatalf("Dispatch failed: %s", result.Message)
	}
	if got != "medium" {
		t.Errorf("Expected default medium, got %q", got)
	}
}

func TestDispatchIgnoresUnknownFields(t *testing.T) {
	d := newTestDispatcher(t, Descriptor{
		Name: "echo",
		Parameters: []ParamSpec{
			{Name: "text", Type: ParamString, Required: true},
		},
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			return args.String("text"), "ok", nil
		},
	})

	result := d.Dispatch(context.Background(), "echo", json.RawMessage(`{"text":"hi","extra":42}`), session.New())
	if !result.Success {
		t.Fatalf("Dispatch failed: %s", result.Message)
	}
}

func TestDispatchTrimsStrings(t *testing.T) {
	var got string
	d := newTestDispatcher(t, Descriptor{
		Name: "echo",
		Parameters: []ParamSpec{
			{Name: "text", Type: ParamString, Required: true},
		},
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			got = args.String("text")
			return nil, "ok", nil
		},
	})

	d.Dispatch(context.Background(), "echo", json.RawMessage(`{"text":"  padded  "}`), session.New())
	if got != "padded" {
		t.Errorf("Expected trimmed string, got %q", got)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	d := newTestDispatcher(t, Descriptor{
		Name: "explode",
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			panic("boom")
		},
	})

	result := d.Dispatch(context.Background(), "explode", nil, session.New())
	if result.Success {
		t.Fatal("Expected failure from panicking handler")
	}
	if result.Kind != KindBackend {
		t.Errorf("Expected kind %s, got %s", KindBackend, result.Kind)
	}
}

func TestDispatchTimeout(t *testing.T) {
	d := newTestDispatcher(t, Descriptor{
		Name: "slow",
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			<-ctx.Done()
			return nil, "", ctx.Err()
		},
	}).WithConfig(Config{TimeoutSecs: 1})

	result := d.Dispatch(context.Background(), "slow", nil, session.New())
	if result.Kind != KindTimeout {
		t.Errorf("Expected kind %s, got %s", KindTimeout, result.Kind)
	}
}

func TestDispatchDiscardsResultAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := newTestDispatcher(t, Descriptor{
		Name: "write",
		Handler: func(hctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			cancel()
			// The handler context is detached, so the write completes.
			select {
			case <-hctx.Done():
				t.Error("Handler context was cancelled with the conversation")
			case <-time.After(10 * time.Millisecond):
			}
			return "written", "done", nil
		},
	})

	result := d.Dispatch(ctx, "write", nil, session.New())
	if result.Success {
		t.Fatal("Expected the computed result to be discarded after cancellation")
	}
	if result.Kind != KindBackend {
		t.Errorf("Expected kind %s, got %s", KindBackend, result.Kind)
	}
	if result.Payload != nil {
		t.Errorf("Expected no payload, got %v", result.Payload)
	}
}

func TestDispatchErrorClassification(t *testing.T) {
	d := newTestDispatcher(t, Descriptor{
		Name: "fail",
		Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
			return nil, "", Errorf(KindUnimplemented, "not yet implemented")
		},
	})

	result := d.Dispatch(context.Background(), "fail", nil, session.New())
	if result.Kind != KindUnimplemented {
		t.Errorf("Expected kind %s, got %s", KindUnimplemented, result.Kind)
	}
	if result.Message != "not yet implemented" {
		t.Errorf("Expected the adapter message verbatim, got %q", result.Message)
	}
}

func TestResultEncode(t *testing.T) {
	encoded := success(map[string]int{"id": 7}, "done").Encode()
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("Encode produced invalid JSON: %v", err)
	}
	if decoded["success"] != true {
		t.Errorf("Expected success true, got %v", decoded["success"])
	}

	encoded = failure(KindNotFound, "case 9 not found").Encode()
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("Encode produced invalid JSON: %v", err)
	}
	if decoded["error_kind"] != "not_found" {
		t.Errorf("Expected error_kind not_found, got %v", decoded["error_kind"])
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry(Descriptor{Name: "dup"}, Descriptor{Name: "dup"})
	if err == nil {
		t.Fatal("Expected error for duplicate tool name")
	}
}
