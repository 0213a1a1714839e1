package components

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"
)

// CollisionRelay re-broadcasts the host physics collision callbacks as
// multicast events, so scripts can subscribe without implementing
// engine.CollisionHandler themselves.
type CollisionRelay struct {
	engine.BaseComponent

	// RequiredTag filters events to objects carrying the tag. Empty relays all.
	RequiredTag string

	Entered engine.EventWithArg[*engine.GameObject]
	Exited  engine.EventWithArg[*engine.GameObject]
}

func NewCollisionRelay() *CollisionRelay {
	return &CollisionRelay{}
}

func (r *CollisionRelay) accepts(other *engine.GameObject) bool {
	if other == nil {
		return false
	}
	return r.RequiredTag == "" || other.HasTag(r.RequiredTag)
}

// OnCollisionEnter implements engine.CollisionHandler
func (r *CollisionRelay) OnCollisionEnter(other *engine.GameObject) {
	if r.accepts(other) {
		r.Entered.Invoke(other)
	}
}

// OnCollisionExit implements engine.CollisionHandler
func (r *CollisionRelay) OnCollisionExit(other *engine.GameObject) {
	if r.accepts(other) {
		r.Exited.Invoke(other)
	}
}
