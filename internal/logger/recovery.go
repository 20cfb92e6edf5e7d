package logger

import (
	"context"
)

// Recover traps panics and displays them using FatalWithStackSkip.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		if _, ok := r.(FatalError); ok {
			panic(r)
		}
		// Skip Recover and runtime.gopanic
		FatalWithStackSkip(ctx, 2, "panic: %v", r)
	}
}
