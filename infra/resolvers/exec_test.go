package resolvers

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/openathletics/flextime/infra/logger"
)

func TestExecResolverCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := NewExecResolver("echo_agent", "echo", nil, logger.NopLogger{})
	out, err := r.Invoke(context.Background(), "analyze venues", "prior context")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if !strings.Contains(out, "--prompt analyze venues") {
		t.Errorf("prompt not passed through: %q", out)
	}
	if !strings.Contains(out, "--system-prompt prior context") {
		t.Errorf("system prompt not passed through: %q", out)
	}
}

func TestExecResolverReportsStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := NewExecResolver("fail_agent", "sh", []string{"-c", "echo boom >&2; exit 3", "--"}, logger.NopLogger{})
	_, err := r.Invoke(context.Background(), "x", "")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected stderr in error, got %v", err)
	}
}

func TestExecResolverHonorsContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := NewExecResolver("slow_agent", "sh", []string{"-c", "sleep 5", "--"}, logger.NopLogger{})
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := r.Invoke(ctx, "x", "")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 3*time.Second {
		t.Errorf("invocation was not canceled promptly")
	}
}
