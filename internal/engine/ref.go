package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
// Use this in components when you want drag-and-drop GameObject references.
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *GameObjectRef) Clear() {
	r.UID = 0
}

// Relation restricts which objects a ConstrainedRef may point at, judged
// against the object that owns the reference field.
type Relation int

const (
	RelationAny        Relation = iota // any scene object
	RelationSelf                       // only the owner itself
	RelationAncestor                   // only ancestors of the owner
	RelationDescendant                 // only descendants of the owner
	RelationSameTree                   // any object sharing the owner's root
)

func (r Relation) String() string {
	switch r {
	case RelationSelf:
		return "Self"
	case RelationAncestor:
		return "Ancestor"
	case RelationDescendant:
		return "Descendant"
	case RelationSameTree:
		return "SameTree"
	default:
		return "Any"
	}
}

// ConstrainedRef is a GameObjectRef whose editor drawer only accepts drops
// satisfying Relation relative to the owning object.
type ConstrainedRef struct {
	GameObjectRef
	Relation Relation
}

// Accepts reports whether candidate may be assigned to a ref owned by owner.
func (r ConstrainedRef) Accepts(owner, candidate *GameObject) bool {
	if owner == nil || candidate == nil {
		return false
	}
	switch r.Relation {
	case RelationSelf:
		return candidate == owner
	case RelationAncestor:
		return candidate.IsAncestorOf(owner)
	case RelationDescendant:
		return candidate.IsDescendantOf(owner)
	case RelationSameTree:
		return candidate.Root() == owner.Root()
	default:
		return true
	}
}

// SetIfAllowed assigns candidate when the constraint allows it and reports
// whether the assignment happened.
func (r *ConstrainedRef) SetIfAllowed(owner, candidate *GameObject) bool {
	if !r.Accepts(owner, candidate) {
		return false
	}
	r.Set(candidate)
	return true
}
