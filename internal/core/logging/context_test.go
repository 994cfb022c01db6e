package logging

import (
	"context"
	"testing"
)

func TestWithWorkflow(t *testing.T) {
	ctx := WithWorkflow(context.Background(), "execute")

	if got := GetWorkflow(ctx); got != "execute" {
		t.Errorf("GetWorkflow() = %q, want %q", got, "execute")
	}
}

func TestWithFile(t *testing.T) {
	ctx := WithFile(context.Background(), "definitions/smoke.csv")

	if got := GetFile(ctx); got != "definitions/smoke.csv" {
		t.Errorf("GetFile() = %q, want %q", got, "definitions/smoke.csv")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetWorkflow(ctx); got != "" {
		t.Errorf("GetWorkflow() = %q, want empty string", got)
	}

	if got := GetFile(ctx); got != "" {
		t.Errorf("GetFile() = %q, want empty string", got)
	}
}
