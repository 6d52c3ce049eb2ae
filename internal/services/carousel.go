package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrIndexOutOfRange is returned when selecting a slide that does not exist
var ErrIndexOutOfRange = errors.New("index out of range")

// Carousel tracks the visible image of a modal gallery. The index is always
// in [0, len(images)) while there are images, and 0 otherwise.
type Carousel struct {
	mu     sync.Mutex
	images []string
	index  int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCarousel creates an empty carousel
func NewCarousel() *Carousel {
	return &Carousel{}
}

// Reset stops auto-advance and shows images from the first one
func (c *Carousel) Reset(images []string) {
	c.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = images
	c.index = 0
}

// Index returns the current slide
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of slides
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Current returns the visible image, or "" when empty
func (c *Carousel) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return ""
	}
	return c.images[c.index]
}

// Next advances one slide, wrapping from the last to the first
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.images); n > 0 {
		c.index = (c.index + 1) % n
	}
	return c.index
}

// Prev goes back one slide, wrapping from the first to the last
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.images); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
	return c.index
}

// Select jumps to slide i
func (c *Carousel) Select(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.images) {
		return fmt.Errorf("slide %d of %d: %w", i, len(c.images), ErrIndexOutOfRange)
	}
	c.index = i
	return nil
}

// Start advances every interval until Stop, Reset, or ctx is done. It does
// nothing for galleries with fewer than two images.
func (c *Carousel) Start(ctx context.Context, interval time.Duration) {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 || interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Next()
			}
		}
	}()
}

// Running reports whether auto-advance is active
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Stop cancels auto-advance and waits for its goroutine to exit
func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
