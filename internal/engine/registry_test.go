package engine

import "testing"

type fakeSerializable struct {
	BaseComponent
	Speed float32
}

func (f *fakeSerializable) TypeName() string { return "Fake" }

func (f *fakeSerializable) Serialize() map[string]any {
	return map[string]any{"type": "Fake", "speed": f.Speed}
}

func (f *fakeSerializable) Deserialize(data map[string]any) {
	if s, ok := data["speed"].(float64); ok {
		f.Speed = float32(s)
	}
}

func TestRegistryCreateComponent(t *testing.T) {
	RegisterComponent("Fake", func() Serializable { return &fakeSerializable{} })

	c := CreateComponent("Fake", map[string]any{"speed": 2.5})
	if c == nil {
		t.Fatal("CreateComponent should return the registered component")
	}
	fake, ok := c.(*fakeSerializable)
	if !ok {
		t.Fatalf("Expected *fakeSerializable, got %T", c)
	}
	if fake.Speed != 2.5 {
		t.Errorf("Props should be applied, got speed %f", fake.Speed)
	}

	if CreateComponent("Missing", nil) != nil {
		t.Error("Unknown names should return nil")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	RegisterComponent("Duplicate", func() Serializable { return &fakeSerializable{} })

	defer func() {
		if recover() == nil {
			t.Error("Registering the same name twice should panic")
		}
	}()
	RegisterComponent("Duplicate", func() Serializable { return &fakeSerializable{} })
}

func TestRegisteredComponentsSorted(t *testing.T) {
	RegisterComponent("Zebra", func() Serializable { return &fakeSerializable{} })
	RegisterComponent("Apple", func() Serializable { return &fakeSerializable{} })

	names := RegisteredComponents()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
