package render

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler fires timers only when Advance moves its clock past them.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

type recordingClipboard struct {
	texts []string
	err   error
}

func (c *recordingClipboard) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.texts = append(c.texts, text)
	return nil
}

func TestCopyButton_CopiedThenIdle(t *testing.T) {
	sched := &fakeScheduler{}
	cb := &recordingClipboard{}
	b := NewCopyButton("fmt.Println(1)", sched, cb.write)

	assert.Equal(t, CopyIdle, b.State())
	require.NoError(t, b.Copy())
	assert.Equal(t, CopyCopied, b.State())
	assert.Equal(t, []string{"fmt.Println(1)"}, cb.texts)

	sched.Advance(time.Second)
	assert.Equal(t, CopyCopied, b.State())

	sched.Advance(time.Second)
	assert.Equal(t, CopyIdle, b.State())
}

func TestCopyButton_CopyAgainRestartsDelay(t *testing.T) {
	sched := &fakeScheduler{}
	b := NewCopyButton("x", sched, (&recordingClipboard{}).write)

	require.NoError(t, b.Copy())
	sched.Advance(1500 * time.Millisecond)
	require.NoError(t, b.Copy())

	sched.Advance(time.Second)
	assert.Equal(t, CopyCopied, b.State())

	sched.Advance(time.Second)
	assert.Equal(t, CopyIdle, b.State())
}

func TestCopyButton_CloseCancelsReset(t *testing.T) {
	sched := &fakeScheduler{}
	b := NewCopyButton("x", sched, (&recordingClipboard{}).write)

	require.NoError(t, b.Copy())
	sched.Advance(time.Second)
	b.Close()

	require.Len(t, sched.timers, 1)
	assert.True(t, sched.timers[0].stopped)
	assert.Equal(t, CopyIdle, b.State())

	// a callback that slipped past Stop must not touch the closed button
	sched.timers[0].f()
	assert.Equal(t, CopyIdle, b.State())

	sched.Advance(5 * time.Second)
	assert.Equal(t, CopyIdle, b.State())
	assert.ErrorIs(t, b.Copy(), ErrButtonClosed)
}

func TestCopyButton_ClipboardFailure(t *testing.T) {
	sched := &fakeScheduler{}
	b := NewCopyButton("x", sched, (&recordingClipboard{err: errors.New("no clipboard utilities available")}).write)

	err := b.Copy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write clipboard")
	assert.Equal(t, CopyIdle, b.State())
	assert.Empty(t, sched.timers)
}

func TestCopyButton_RealScheduler(t *testing.T) {
	b := NewCopyButton("x", nil, (&recordingClipboard{}).write)
	require.NoError(t, b.Copy())
	assert.Equal(t, CopyCopied, b.State())
	b.Close()
	assert.Equal(t, CopyIdle, b.State())
}
