package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ModalKind identifies what the preview modal is showing
type ModalKind string

const (
	ModalAMV     ModalKind = "amv"
	ModalProject ModalKind = "project"
	ModalGFX     ModalKind = "gfx"
)

// ErrModalClosed is returned when navigating a closed modal
var ErrModalClosed = errors.New("modal is not open")

// ModalState is the client view of the modal
type ModalState struct {
	Open    bool      `json:"open"`
	Kind    ModalKind `json:"kind,omitempty"`
	ID      string    `json:"id,omitempty"`
	Images  []string  `json:"images,omitempty"`
	Index   int       `json:"index"`
	Current string    `json:"current,omitempty"`
	Auto    bool      `json:"auto_advance"`
}

// Modal holds the selected-item pointer of a showcase and its gallery
type Modal struct {
	mu       sync.Mutex
	kind     ModalKind
	id       string
	carousel *Carousel
	interval time.Duration
}

// NewModal creates a closed modal whose project galleries auto-advance
// every interval
func NewModal(interval time.Duration) *Modal {
	return &Modal{carousel: NewCarousel(), interval: interval}
}

// Open points the modal at a record. Project galleries start auto-advancing.
// The carousel always restarts at the first image.
func (m *Modal) Open(ctx context.Context, kind ModalKind, id string, images []string) ModalState {
	m.mu.Lock()
	m.kind, m.id = kind, id
	m.mu.Unlock()

	m.carousel.Reset(images)
	if kind == ModalProject {
		// Detached from the request; Close or session expiry stops it.
		m.carousel.Start(context.WithoutCancel(ctx), m.interval)
	}
	return m.State()
}

// Close clears the selection and cancels auto-advance
func (m *Modal) Close() {
	m.mu.Lock()
	m.kind, m.id = "", ""
	m.mu.Unlock()
	m.carousel.Reset(nil)
}

// Next shows the next image
func (m *Modal) Next() (ModalState, error) {
	if !m.isOpen() {
		return m.State(), ErrModalClosed
	}
	m.carousel.Next()
	return m.State(), nil
}

// Prev shows the previous image
func (m *Modal) Prev() (ModalState, error) {
	if !m.isOpen() {
		return m.State(), ErrModalClosed
	}
	m.carousel.Prev()
	return m.State(), nil
}

// Select shows image i
func (m *Modal) Select(i int) (ModalState, error) {
	if !m.isOpen() {
		return m.State(), ErrModalClosed
	}
	if err := m.carousel.Select(i); err != nil {
		return m.State(), fmt.Errorf("select image: %w", err)
	}
	return m.State(), nil
}

// State snapshots the modal
func (m *Modal) State() ModalState {
	m.mu.Lock()
	kind, id := m.kind, m.id
	m.mu.Unlock()

	if kind == "" {
		return ModalState{}
	}
	m.carousel.mu.Lock()
	images := m.carousel.images
	index := m.carousel.index
	auto := m.carousel.cancel != nil
	m.carousel.mu.Unlock()

	st := ModalState{Open: true, Kind: kind, ID: id, Images: images, Index: index, Auto: auto}
	if len(images) > 0 {
		st.Current = images[index]
	}
	return st
}

func (m *Modal) isOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kind != ""
}
