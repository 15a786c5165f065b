package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "circuit.toml")
	p.OnLoadComplete(ctx, "circuit.toml", 12, time.Second, nil)
	p.OnSolveStart(ctx, 12)
	p.OnSolveComplete(ctx, 5, time.Second, nil)
	p.OnRenderStart(ctx, "tex")
	p.OnRenderComplete(ctx, "tex", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify default is noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	// Set custom hooks
	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the previous hooks")
	}

	Reset()
}

// testPipelineHooks records which events fired.
type testPipelineHooks struct {
	NoopPipelineHooks
	solveStarts int
}

func (h *testPipelineHooks) OnSolveStart(context.Context, int) {
	h.solveStarts++
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	Pipeline().OnSolveStart(context.Background(), 3)
	if custom.solveStarts != 1 {
		t.Errorf("solveStarts = %d, want 1", custom.solveStarts)
	}
}
