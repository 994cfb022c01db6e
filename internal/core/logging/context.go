package logging

import "context"

type contextKey string

const (
	workflowKey contextKey = "workflow"
	fileKey     contextKey = "file"
)

// WithWorkflow adds the running workflow name (create, execute, ...) to the context.
func WithWorkflow(ctx context.Context, workflow string) context.Context {
	return context.WithValue(ctx, workflowKey, workflow)
}

// WithFile adds the test-case file being worked on to the context.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// GetWorkflow retrieves the workflow name from the context.
// Returns empty string if not present.
func GetWorkflow(ctx context.Context) string {
	if v, ok := ctx.Value(workflowKey).(string); ok {
		return v
	}
	return ""
}

// GetFile retrieves the file path from the context.
// Returns empty string if not present.
func GetFile(ctx context.Context) string {
	if v, ok := ctx.Value(fileKey).(string); ok {
		return v
	}
	return ""
}
