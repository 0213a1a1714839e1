package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := GameObjectRef{UID: obj.UID}

	found := ref.Get(scene)
	if found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")
	ref := GameObjectRef{UID: 0}

	if ref.Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}

	ref2 := GameObjectRef{UID: 99999999}
	if ref2.Get(scene) != nil {
		t.Error("Get() with non-existent UID should return nil")
	}

	ref3 := GameObjectRef{UID: 123}
	if ref3.Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefSetClear(t *testing.T) {
	obj := NewGameObject("Target")

	var ref GameObjectRef
	if ref.IsValid() {
		t.Error("Zero ref should be invalid")
	}

	ref.Set(obj)
	if ref.UID != obj.UID {
		t.Errorf("Set stored UID %d, want %d", ref.UID, obj.UID)
	}
	if !ref.IsValid() {
		t.Error("Set ref should be valid")
	}

	ref.Clear()
	if ref.IsValid() {
		t.Error("Cleared ref should be invalid")
	}

	ref.Set(obj)
	ref.Set(nil)
	if ref.UID != 0 {
		t.Error("Set(nil) should clear the ref")
	}
}

// refFixture builds parent -> owner -> child plus an unrelated object.
func refFixture() (parent, owner, child, stranger *GameObject) {
	parent = NewGameObject("Parent")
	owner = NewGameObject("Owner")
	child = NewGameObject("Child")
	stranger = NewGameObject("Stranger")
	parent.AddChild(owner)
	owner.AddChild(child)
	return
}

func TestConstrainedRefAcceptsAny(t *testing.T) {
	parent, owner, _, stranger := refFixture()

	ref := ConstrainedRef{Relation: RelationAny}
	if !ref.Accepts(owner, stranger) {
		t.Error("Any should accept unrelated objects")
	}
	if !ref.Accepts(owner, parent) {
		t.Error("Any should accept ancestors")
	}
	if ref.Accepts(owner, nil) {
		t.Error("No relation accepts nil")
	}
	if ref.Accepts(nil, stranger) {
		t.Error("Nil owner accepts nothing")
	}
}

func TestConstrainedRefAcceptsSelf(t *testing.T) {
	_, owner, child, _ := refFixture()

	ref := ConstrainedRef{Relation: RelationSelf}
	if !ref.Accepts(owner, owner) {
		t.Error("Self should accept the owner")
	}
	if ref.Accepts(owner, child) {
		t.Error("Self should reject other objects")
	}
}

func TestConstrainedRefAcceptsAncestor(t *testing.T) {
	parent, owner, child, stranger := refFixture()

	ref := ConstrainedRef{Relation: RelationAncestor}
	if !ref.Accepts(owner, parent) {
		t.Error("Ancestor should accept the parent")
	}
	if ref.Accepts(owner, child) {
		t.Error("Ancestor should reject descendants")
	}
	if ref.Accepts(owner, owner) {
		t.Error("Ancestor should reject the owner itself")
	}
	if ref.Accepts(owner, stranger) {
		t.Error("Ancestor should reject unrelated objects")
	}
}

func TestConstrainedRefAcceptsDescendant(t *testing.T) {
	parent, owner, child, stranger := refFixture()

	grandchild := NewGameObject("Grandchild")
	child.AddChild(grandchild)

	ref := ConstrainedRef{Relation: RelationDescendant}
	if !ref.Accepts(owner, child) {
		t.Error("Descendant should accept the child")
	}
	if !ref.Accepts(owner, grandchild) {
		t.Error("Descendant should accept deep descendants")
	}
	if ref.Accepts(owner, parent) {
		t.Error("Descendant should reject ancestors")
	}
	if ref.Accepts(owner, stranger) {
		t.Error("Descendant should reject unrelated objects")
	}
}

func TestConstrainedRefAcceptsSameTree(t *testing.T) {
	parent, owner, child, stranger := refFixture()

	ref := ConstrainedRef{Relation: RelationSameTree}
	if !ref.Accepts(owner, parent) || !ref.Accepts(owner, child) || !ref.Accepts(owner, owner) {
		t.Error("SameTree should accept everything under the owner's root")
	}
	if ref.Accepts(owner, stranger) {
		t.Error("SameTree should reject objects from another tree")
	}
}

func TestConstrainedRefSetIfAllowed(t *testing.T) {
	parent, owner, _, stranger := refFixture()

	ref := ConstrainedRef{Relation: RelationAncestor}

	if !ref.SetIfAllowed(owner, parent) {
		t.Error("SetIfAllowed should accept a valid ancestor")
	}
	if ref.UID != parent.UID {
		t.Errorf("Ref should now point at parent, got UID %d", ref.UID)
	}

	if ref.SetIfAllowed(owner, stranger) {
		t.Error("SetIfAllowed should reject an invalid drop")
	}
	if ref.UID != parent.UID {
		t.Error("Rejected drop must not change the ref")
	}
}
