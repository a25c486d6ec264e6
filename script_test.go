package blueberry

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "space"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "dance"}]}`,
		"unknown key":    `{"steps": [{"action": "key", "key": "hyper"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScript_Click(t *testing.T) {
	g := NewGame(4, 4)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 3, "y": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScriptRunner(runner)

	g.Update(0.016)
	if !g.Input().MouseButton(MouseButtonLeft) {
		t.Error("left button not pressed after first update")
	}
	if got := g.Input().MousePixelPos(); got != (Vec2i{3, 2}) {
		t.Errorf("MousePixelPos = %v, want {3 2}", got)
	}
	if runner.Done() {
		t.Error("runner done while the release is pending")
	}

	g.Update(0.016)
	if g.Input().MouseButton(MouseButtonLeft) {
		t.Error("left button still held after second update")
	}

	g.Update(0.016)
	if !runner.Done() {
		t.Error("runner not done after the queue drained")
	}
}

func TestScript_KeyTap(t *testing.T) {
	g := NewGame(4, 4)
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "key", "key": "ArrowUp"}]}`))
	g.SetScriptRunner(runner)

	g.Update(0.016)
	if !g.Input().Key(KeyArrowUp) {
		t.Error("ArrowUp not down after first update")
	}
	g.Update(0.016)
	if g.Input().Key(KeyArrowUp) {
		t.Error("ArrowUp still down after second update")
	}
}

func TestScript_Wait(t *testing.T) {
	g := NewGame(4, 4)
	runner, _ := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "keydown", "key": "A"}
	]}`))
	g.SetScriptRunner(runner)

	for i := 0; i < 3; i++ {
		g.Update(0.016)
		if g.Input().Key(KeyA) {
			t.Fatalf("A down after %d updates, want after 4", i+1)
		}
	}
	g.Update(0.016)
	if !g.Input().Key(KeyA) {
		t.Error("A not down after the wait")
	}
}

func TestInjectDrag(t *testing.T) {
	g := NewGame(4, 4)
	g.InjectDrag(0, 0, 40, 0, 5)
	if g.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", g.Pending())
	}
	var xs []int
	for g.Pending() > 0 {
		g.Update(0.016)
		xs = append(xs, g.Input().MousePixelPos().X)
	}
	want := []int{0, 10, 20, 30, 40}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("x[%d] = %d, want %d", i, xs[i], want[i])
		}
	}
	if g.Input().MouseButton(MouseButtonLeft) {
		t.Error("button held after the drag ended")
	}
}

func TestInjectDrag_MinimumFrames(t *testing.T) {
	g := NewGame(4, 4)
	g.InjectDrag(0, 0, 1, 1, 0)
	if g.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", g.Pending())
	}
}
