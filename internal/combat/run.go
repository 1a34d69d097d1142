package combat

import "context"

// ActionSource supplies the player's next action. It is only consulted
// while the session waits for a choice; pending charges resolve without it.
type ActionSource interface {
	NextAction(ctx context.Context, s *Session) (Action, error)
}

// ActionFunc adapts a function to ActionSource.
type ActionFunc func(ctx context.Context, s *Session) (Action, error)

func (f ActionFunc) NextAction(ctx context.Context, s *Session) (Action, error) { return f(ctx, s) }

// Run drives s to completion. onTurn, if non-nil, sees every step. A
// cancelled context or a failing source abandons the combat.
func Run(ctx context.Context, s *Session, src ActionSource, onTurn func(Turn)) *Result {
	for !s.Done() {
		if ctx.Err() != nil {
			return s.Abort()
		}
		a := Continue
		if s.State() != StateCharging {
			var err error
			a, err = src.NextAction(ctx, s)
			if err != nil {
				s.log.Warn("combat input failed", "error", err)
				return s.Abort()
			}
		}
		t := s.Step(a)
		if onTurn != nil {
			onTurn(t)
		}
	}
	return s.Result()
}
