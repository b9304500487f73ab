package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnOperationStart(ctx, "analyze", 10, 12)
	p.OnOperationComplete(ctx, "analyze", time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "analysis")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/analyze")
	h.OnResponse(ctx, "POST", "/v1/analyze", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}

	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	SetCacheHooks(rec)
	SetHTTPHooks(rec)
	if Pipeline() != rec || Cache() != rec || HTTP() != rec {
		t.Fatal("Set*Hooks did not install the custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != rec {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	ctx := context.Background()
	Pipeline().OnOperationComplete(ctx, "decompose", time.Second, errors.New("boom"))
	Cache().OnCacheHit(ctx, "spqr")
	if rec.ops != 1 || rec.hits != 1 {
		t.Errorf("recorded ops=%d hits=%d, want 1, 1", rec.ops, rec.hits)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore NoopPipelineHooks")
	}
}

type recordingHooks struct {
	NoopPipelineHooks
	NoopCacheHooks
	NoopHTTPHooks
	ops, hits int
}

func (r *recordingHooks) OnOperationComplete(context.Context, string, time.Duration, error) {
	r.ops++
}

func (r *recordingHooks) OnCacheHit(context.Context, string) { r.hits++ }
