package console

import (
	"context"
	"fmt"
	"time"
)

// SessionObserver receives one event per session operation: the operation
// name, its target (a URL, selector, or frame name), and the outcome.
// Values filled into fields are never part of an event, so an observer can
// be pointed at the terminal without exposing credentials.
type SessionObserver func(op, target, outcome string)

// ObserveSession wraps a session so every operation reports to obs. Used
// by verbose mode to build the navigation trace.
func ObserveSession(s Session, obs SessionObserver) Session {
	if obs == nil {
		return s
	}
	return &observedSession{inner: s, obs: obs}
}

// ObservedFactory wraps a factory so the sessions it opens report to
// Observer.
type ObservedFactory struct {
	Inner    Factory
	Observer SessionObserver
}

// Open opens a session through the inner factory and wraps it.
func (f ObservedFactory) Open(ctx context.Context) (Session, error) {
	sess, err := f.Inner.Open(ctx)
	if err != nil {
		return nil, err
	}
	return ObserveSession(sess, f.Observer), nil
}

type observedSession struct {
	inner Session
	obs   SessionObserver
}

func (o *observedSession) report(op, target string, err error) error {
	if err != nil {
		o.obs(op, target, GetShortErrorMessage(err))
	} else {
		o.obs(op, target, "ok")
	}
	return err
}

func (o *observedSession) reportBool(op, target string, v bool, err error) (bool, error) {
	if err != nil {
		o.obs(op, target, GetShortErrorMessage(err))
	} else {
		o.obs(op, target, fmt.Sprintf("%t", v))
	}
	return v, err
}

func (o *observedSession) Goto(url string) error {
	return o.report("goto", url, o.inner.Goto(url))
}

// URL is a pure read and too chatty to trace.
func (o *observedSession) URL() string {
	return o.inner.URL()
}

func (o *observedSession) WaitVisible(selector string) error {
	return o.report("wait-visible", selector, o.inner.WaitVisible(selector))
}

func (o *observedSession) WaitGone(selector string) error {
	return o.report("wait-gone", selector, o.inner.WaitGone(selector))
}

func (o *observedSession) Click(selector string) error {
	return o.report("click", selector, o.inner.Click(selector))
}

// Fill reports the selector only, never the value.
func (o *observedSession) Fill(selector, value string) error {
	return o.report("fill", selector, o.inner.Fill(selector, value))
}

func (o *observedSession) Attr(selector, name string) (string, error) {
	v, err := o.inner.Attr(selector, name)
	_ = o.report("attr", selector+"@"+name, err)
	return v, err
}

func (o *observedSession) Exists(selector string) (bool, error) {
	v, err := o.inner.Exists(selector)
	return o.reportBool("exists", selector, v, err)
}

func (o *observedSession) IsChecked(selector string) (bool, error) {
	v, err := o.inner.IsChecked(selector)
	return o.reportBool("checked", selector, v, err)
}

func (o *observedSession) BodyContains(marker string) (bool, error) {
	v, err := o.inner.BodyContains(marker)
	return o.reportBool("body-contains", marker, v, err)
}

func (o *observedSession) EnterFrame(name string) error {
	return o.report("frame", name, o.inner.EnterFrame(name))
}

func (o *observedSession) EnterFrameWith(selector string) error {
	return o.report("frame-with", selector, o.inner.EnterFrameWith(selector))
}

func (o *observedSession) ExitFrames() error {
	return o.report("frames-exit", "", o.inner.ExitFrames())
}

func (o *observedSession) Close() error {
	return o.report("close", "", o.inner.Close())
}

// Hold forwards to the wrapped session when it supports holding the
// window open, so hold-on-failure keeps working under observation.
func (o *observedSession) Hold(d time.Duration) {
	if h, ok := o.inner.(interface{ Hold(time.Duration) }); ok {
		h.Hold(d)
	}
}
