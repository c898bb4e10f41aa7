package main

import (
	"testing"
	"time"
)

func TestSessionGroup(t *testing.T) {
	t.Run("empty group drains at once", func(t *testing.T) {
		g := &sessionGroup{}
		g.close()
		if !g.wait(time.Second) {
			t.Error("wait() = false for an empty group")
		}
	})

	t.Run("closed group rejects sessions", func(t *testing.T) {
		g := &sessionGroup{}
		if !g.add() {
			t.Fatal("add() before close = false")
		}
		g.close()
		if g.add() {
			t.Error("add() after close = true")
		}
		if g.wait(10 * time.Millisecond) {
			t.Error("wait() = true while a session is running")
		}

		g.done()
		if !g.wait(time.Second) {
			t.Error("wait() = false after the last session ended")
		}
	})

	t.Run("concurrent add and wait", func(t *testing.T) {
		g := &sessionGroup{}
		start := make(chan struct{})
		for i := 0; i < 50; i++ {
			go func() {
				<-start
				if g.add() {
					g.done()
				}
			}()
		}
		close(start)
		g.close()
		if !g.wait(time.Second) {
			t.Error("wait() did not drain")
		}
	})
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("getSize() = (%d, %d, %v), want (120, 40, nil)", w, h, err)
	}
}
