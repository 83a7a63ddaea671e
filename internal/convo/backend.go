// Package convo lets outside observers talk to agents in character. The
// chat backend is optional; the simulation runs unchanged without one.
package convo

import "context"

// Backend generates one in-character reply. characterID scopes the
// per-character conversation history.
type Backend interface {
	Chat(ctx context.Context, characterID, system, prompt string, temperature float64) (string, error)
}
