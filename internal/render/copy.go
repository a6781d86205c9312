package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// CopyResetDelay is how long a code block shows the copied state.
const CopyResetDelay = 2 * time.Second

var ErrButtonClosed = errors.New("copy button closed")

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

var clipboardWrite ClipboardFunc = clipboard.WriteAll

type CopyState string

const (
	CopyIdle   CopyState = "idle"
	CopyCopied CopyState = "copied"
)

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// CopyButton is the copy affordance of one code block: idle -> copied on
// Copy, back to idle CopyResetDelay later. The reset timer is owned by the
// button and stopped by Close.
type CopyButton struct {
	text  string
	sched Scheduler
	write ClipboardFunc

	mu     sync.Mutex
	state  CopyState
	timer  Timer
	gen    uint64
	closed bool
}

// NewCopyButton returns an idle button for text. Nil sched and write select
// time.AfterFunc and the system clipboard.
func NewCopyButton(text string, sched Scheduler, write ClipboardFunc) *CopyButton {
	if sched == nil {
		sched = realScheduler{}
	}
	if write == nil {
		write = clipboardWrite
	}

	return &CopyButton{
		text:  text,
		sched: sched,
		write: write,
		state: CopyIdle,
	}
}

func (b *CopyButton) Text() string {
	return b.text
}

func (b *CopyButton) State() CopyState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// Copy places the block text on the clipboard and enters the copied state.
// When the clipboard is unavailable the state stays idle and the error is
// returned. Copying again while copied restarts the reset delay.
func (b *CopyButton) Copy() error {
	if b.isClosed() {
		return ErrButtonClosed
	}

	if err := b.write(b.text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrButtonClosed
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.state = CopyCopied
	b.timer = b.sched.AfterFunc(CopyResetDelay, func() { b.reset(gen) })

	return nil
}

// reset ignores callbacks of timers that were replaced or stopped too late.
func (b *CopyButton) reset(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || gen != b.gen {
		return
	}
	b.state = CopyIdle
	b.timer = nil
}

// Close stops a pending reset and returns the button to idle for good.
func (b *CopyButton) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.state = CopyIdle
}

func (b *CopyButton) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closed
}
