// Package follow tails a file and exposes the bytes appended to it as a
// stream, so moves can be fed to a game from another process or an editor.
package follow

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes into one wake-up.
const DefaultDebounce = 100 * time.Millisecond

// headSize is how much of the start of the file is kept to notice a
// rewrite that leaves it at least as long as before.
const headSize = 64

// Follower reads a file from the start and then blocks for appended data.
// Read returns io.EOF only after Close.
type Follower struct {
	watcher  *fsnotify.Watcher
	path     string
	file     *os.File
	offset   int64
	head     []byte
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	wake   chan struct{}
	stopCh chan struct{}
}

// New starts following path, creating it empty if it does not exist.
func New(path string) (*Follower, error) {
	return NewWithDebounce(path, DefaultDebounce)
}

// NewWithDebounce is New with a custom debounce delay.
func NewWithDebounce(path string, debounce time.Duration) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	file, err := os.OpenFile(abs, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening move file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		file.Close()
		return nil, err
	}

	// Watch the directory so a file replaced on save is still seen.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		file.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	f := &Follower{
		watcher:  watcher,
		path:     abs,
		file:     file,
		debounce: debounce,
		wake:     make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
	go f.run()
	return f, nil
}

// Path returns the absolute path being followed.
func (f *Follower) Path() string {
	return f.path
}

// Read implements io.Reader, blocking until data is appended or the
// follower is closed.
func (f *Follower) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		// A wake-up may come from a rewrite rather than an append, so the
		// file is checked before every read.
		if err := f.refresh(); err != nil {
			return 0, err
		}

		n, err := f.file.Read(p)
		if n > 0 {
			f.remember(p[:n])
			return n, nil
		}
		if err != nil && err != io.EOF {
			if f.isStopped() {
				return 0, io.EOF
			}
			return 0, err
		}

		select {
		case <-f.wake:
		case <-f.stopCh:
			return 0, io.EOF
		}
	}
}

// remember advances the offset past data and keeps the first headSize bytes
// of the file for rewrite detection.
func (f *Follower) remember(data []byte) {
	if f.offset < headSize {
		keep := min(int64(len(data)), headSize-f.offset)
		f.head = append(f.head, data[:keep]...)
	}
	f.offset += int64(len(data))
}

// refresh reopens the file if it was replaced at path, and starts over from
// the beginning if it was rewritten: shorter than what has been read, or
// with a different head.
func (f *Follower) refresh() error {
	current, err := f.file.Stat()
	if err != nil {
		return nil
	}
	if onDisk, err := os.Stat(f.path); err == nil && !os.SameFile(current, onDisk) {
		file, err := os.Open(f.path)
		if err != nil {
			return fmt.Errorf("reopening move file: %w", err)
		}
		f.mu.Lock()
		if f.stopped {
			f.mu.Unlock()
			file.Close()
			return nil
		}
		f.file.Close()
		f.file = file
		f.mu.Unlock()
		f.reset()
		return nil
	}
	if current.Size() >= f.offset && f.sameHead() {
		return nil
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding move file: %w", err)
	}
	f.reset()
	return nil
}

// sameHead reports whether the file still starts with the bytes read first.
func (f *Follower) sameHead() bool {
	if len(f.head) == 0 {
		return true
	}
	buf := make([]byte, len(f.head))
	if _, err := f.file.ReadAt(buf, 0); err != nil {
		return false
	}
	return bytes.Equal(buf, f.head)
}

func (f *Follower) reset() {
	f.offset = 0
	f.head = f.head[:0]
}

// Close stops following. Pending and future reads return io.EOF.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return nil
	}
	f.stopped = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	file := f.file
	f.mu.Unlock()

	close(f.stopCh)
	werr := f.watcher.Close()
	ferr := file.Close()
	if werr != nil {
		return werr
	}
	return ferr
}

func (f *Follower) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func (f *Follower) run() {
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if f.relevant(event) {
				f.schedule()
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Move file watcher error: %v", err)

		case <-f.stopCh:
			return
		}
	}
}

// relevant reports whether event may have added data to the followed file.
func (f *Follower) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != f.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// schedule wakes a blocked reader once writes have settled.
func (f *Follower) schedule() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, f.signal)
}

func (f *Follower) signal() {
	select {
	case f.wake <- struct{}{}:
	default:
	}
}
