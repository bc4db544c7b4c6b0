package tui

import (
	"testing"
	"time"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	f, err := New(screen, config.DefaultGameplayConfig(), 42)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f, screen
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventQuit(t *testing.T) {
	f, _ := newTestFrontend(t)

	tests := []struct {
		name string
		ev   tcell.Event
		want bool
	}{
		{name: "q 退出", ev: keyEvent('q'), want: false},
		{name: "Esc 退出", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), want: false},
		{name: "Ctrl-C 退出", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), want: false},
		{name: "移动键继续", ev: keyEvent('w'), want: true},
		{name: "无关键继续", ev: keyEvent('x'), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisHoldDecays(t *testing.T) {
	f, _ := newTestFrontend(t)

	f.HandleEvent(keyEvent('w'))
	f.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got := f.Input().Axis(host.AxisVertical); got != 1 {
		t.Fatalf("vertical axis = %v, want 1", got)
	}
	if got := f.Input().Axis(host.AxisHorizontal); got != -1 {
		t.Fatalf("horizontal axis = %v, want -1", got)
	}

	for i := 0; i < HoldFrames-1; i++ {
		if err := f.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := f.Input().Axis(host.AxisVertical); got != 1 {
		t.Errorf("axis released early after %d frames", HoldFrames-1)
	}

	if err := f.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := f.Input().Axis(host.AxisVertical); got != 0 {
		t.Errorf("vertical axis = %v after hold window, want 0", got)
	}
	if got := f.Input().Axis(host.AxisHorizontal); got != 0 {
		t.Errorf("horizontal axis = %v after hold window, want 0", got)
	}
}

func TestRepeatedKeyRefreshesHold(t *testing.T) {
	f, _ := newTestFrontend(t)

	f.HandleEvent(keyEvent('s'))
	for i := 0; i < HoldFrames-1; i++ {
		_ = f.Step()
	}
	f.HandleEvent(keyEvent('s'))
	for i := 0; i < HoldFrames-1; i++ {
		_ = f.Step()
	}
	if got := f.Input().Axis(host.AxisVertical); got != -1 {
		t.Errorf("vertical axis = %v, want -1 while key repeats", got)
	}
}

func TestRestartKey(t *testing.T) {
	f, _ := newTestFrontend(t)
	first := f.Arena()

	f.HandleEvent(keyEvent('r'))
	if err := f.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if f.Arena() == first {
		t.Error("restart key should load a fresh arena")
	}
}

func TestDrawShowsPlayerAndHUD(t *testing.T) {
	f, screen := newTestFrontend(t)
	// 第一帧之前还没有刷怪，场上只有玩家
	f.Draw()

	if r, _, _, _ := screen.GetContent(40, 12); r != '@' {
		t.Errorf("center cell = %q, want '@'", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != 'W' {
		t.Errorf("HUD starts with %q, want 'W'", r)
	}
}

// 前端退出后转发协程不会阻塞在无人接收的通道上
func TestForwardEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		forwardEvents(screen, events, done)
		close(exited)
	}()

	close(done)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardEvents did not return after done was closed")
	}
}
