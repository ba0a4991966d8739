package console

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestObserveSession_ReportsOperations(t *testing.T) {
	f := newFakeSession()
	sel := DefaultSelectors()
	scriptLogin(f, sel)

	var events []string
	obs := ObserveSession(f, func(op, target, outcome string) {
		events = append(events, op+" "+target+" "+outcome)
	})

	if err := obs.Goto(testConsoleURL); err != nil {
		t.Fatalf("Goto() error = %v", err)
	}
	if err := obs.Fill(sel.PasswordField, "hunter2"); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if _, err := obs.Exists(sel.UsernameField); err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if err := obs.WaitVisible("#nope"); err == nil {
		t.Fatal("WaitVisible(#nope) error = nil, want timeout")
	}

	if len(events) != 4 {
		t.Fatalf("observer saw %d events, want 4: %v", len(events), events)
	}

	want := []string{
		"goto " + testConsoleURL + " ok",
		"fill " + sel.PasswordField + " ok",
		"exists " + sel.UsernameField + " true",
	}
	for i, w := range want {
		if events[i] != w {
			t.Errorf("events[%d] = %q, want %q", i, events[i], w)
		}
	}

	// The failed wait reports a short message, not "ok"
	last := events[len(events)-1]
	if !strings.HasPrefix(last, "wait-visible #nope ") || strings.HasSuffix(last, " ok") {
		t.Errorf("events[last] = %q, want a failed wait-visible event", last)
	}
}

func TestObserveSession_NeverReportsFillValues(t *testing.T) {
	f := newFakeSession()
	sel := DefaultSelectors()
	f.present[sel.PasswordField] = true

	var events []string
	obs := ObserveSession(f, func(op, target, outcome string) {
		events = append(events, op+" "+target+" "+outcome)
	})

	if err := obs.Fill(sel.PasswordField, "s3cret-value"); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	for _, ev := range events {
		if strings.Contains(ev, "s3cret-value") {
			t.Errorf("observer event %q carries the filled value", ev)
		}
	}
}

func TestObserveSession_NilObserverReturnsSession(t *testing.T) {
	f := newFakeSession()
	if got := ObserveSession(f, nil); got != Session(f) {
		t.Error("ObserveSession() with nil observer did not return the session unchanged")
	}
}

func TestObservedFactory_WrapsAndForwardsHold(t *testing.T) {
	inner := &holdingSession{fakeSession: newFakeSession()}
	factory := ObservedFactory{
		Inner:    &fakeFactory{sess: inner},
		Observer: func(op, target, outcome string) {},
	}

	sess, err := factory.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if sess == Session(inner) {
		t.Fatal("Open() returned the unwrapped session")
	}

	holder, ok := sess.(interface{ Hold(time.Duration) })
	if !ok {
		t.Fatal("observed session does not expose Hold")
	}
	holder.Hold(5 * time.Second)
	if inner.held != 5*time.Second {
		t.Errorf("inner.held = %v, want %v", inner.held, 5*time.Second)
	}
}

func TestObservedFactory_PropagatesOpenError(t *testing.T) {
	boom := errors.New("no browser")
	factory := ObservedFactory{
		Inner:    &fakeFactory{err: boom},
		Observer: func(op, target, outcome string) {},
	}

	if _, err := factory.Open(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want %v", err, boom)
	}
}
