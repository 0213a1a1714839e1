package mathutil

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d", got)
	}
	if got := Clamp(float32(1.5), 0, 1); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %f", got)
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(float32(-0.5)); got != 0 {
		t.Errorf("Clamp01(-0.5) = %f", got)
	}
	if got := Clamp01(float32(0.25)); got != 0.25 {
		t.Errorf("Clamp01(0.25) = %f", got)
	}
	if got := Clamp01(2.0); got != 1 {
		t.Errorf("Clamp01(2.0) = %f", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %f", got)
	}
	if got := Lerp(0.0, 10, 2); got != 10 {
		t.Errorf("Lerp should clamp t, got %f", got)
	}
	if got := Lerp(0.0, 10, -1); got != 0 {
		t.Errorf("Lerp should clamp negative t, got %f", got)
	}
}

func TestMoveToward(t *testing.T) {
	if got := MoveToward(0.0, 10, 3); got != 3 {
		t.Errorf("MoveToward(0, 10, 3) = %f", got)
	}
	if got := MoveToward(0.0, 2, 3); got != 2 {
		t.Errorf("MoveToward should not overshoot, got %f", got)
	}
	if got := MoveToward(0.0, -10, 3); got != -3 {
		t.Errorf("MoveToward(0, -10, 3) = %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(370); got != 10 {
		t.Errorf("WrapAngle(370) = %f", got)
	}
	if got := WrapAngle(-90); got != 270 {
		t.Errorf("WrapAngle(-90) = %f", got)
	}
	if got := WrapAngle(360); got != 0 {
		t.Errorf("WrapAngle(360) = %f", got)
	}
	if got := WrapAngle(45); got != 45 {
		t.Errorf("WrapAngle(45) = %f", got)
	}
}
