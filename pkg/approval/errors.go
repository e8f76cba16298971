package approval

import "errors"

var (
	// ErrActionNotFound is returned when an action ID does not exist.
	ErrActionNotFound = errors.New("pending action not found")

	// ErrRuleNotFound is returned when a rule ID does not exist.
	ErrRuleNotFound = errors.New("approval rule not found")

	// ErrInvalidTransition is returned on a CAS mismatch: the action is not
	// in the state the transition requires. Idempotent callers catch this,
	// read the current state, and return it.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrActionExpired is returned when a decision arrives for an action
	// whose expiry has passed. The action is lazily moved to expired as a
	// side effect.
	ErrActionExpired = errors.New("pending action has expired")

	// ErrRuleInvariant is returned when a high/critical rule lacks either a
	// concrete constraint or a bound (expires_at / max_uses).
	ErrRuleInvariant = errors.New("high-risk rules require at least one exact or pattern constraint and an expires_at or max_uses bound")
)
