package dome

import (
	"errors"
	"fmt"
	"sync"
)

// ViewMode is the top level navigation mode of the presentation.
type ViewMode string

const (
	ModeMap          ViewMode = "map"
	ModeProject      ViewMode = "project"
	ModeTour         ViewMode = "tour"
	ModePresentation ViewMode = "presentation"
)

var ErrInvalidTransition = errors.New("invalid navigation transition")

// NavigationState tracks the {mode} x {immersive} state machine. Tour and
// presentation never transition into each other directly; both return to
// the map first. Immersive mode is entered from and exits back to the
// project view.
type NavigationState struct {
	mu        sync.Mutex
	mode      ViewMode
	immersive bool
	project   string
}

func NewNavigationState() *NavigationState {
	return &NavigationState{mode: ModeMap}
}

func (s *NavigationState) Mode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *NavigationState) Immersive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.immersive
}

func (s *NavigationState) Project() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project
}

// SelectProject enters the project view from the map, or switches the
// selected project while already in project view.
func (s *NavigationState) SelectProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeMap && s.mode != ModeProject {
		return fmt.Errorf("%w: %s -> project", ErrInvalidTransition, s.mode)
	}
	s.mode = ModeProject
	s.project = id
	return nil
}

// Back returns to the map from any other mode, leaving immersive mode if
// needed.
func (s *NavigationState) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeMap {
		return fmt.Errorf("%w: already at map", ErrInvalidTransition)
	}
	s.mode = ModeMap
	s.immersive = false
	s.project = ""
	return nil
}

func (s *NavigationState) StartTour() error {
	return s.enterMode(ModeTour)
}

func (s *NavigationState) StartPresentation() error {
	return s.enterMode(ModePresentation)
}

// enterMode admits tour and presentation from the map only, so the two
// can never reach each other without passing through the map.
func (s *NavigationState) enterMode(m ViewMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeMap {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.mode, m)
	}
	s.mode = m
	return nil
}

func (s *NavigationState) EnterImmersive(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeProject {
		return fmt.Errorf("%w: immersive from %s", ErrInvalidTransition, s.mode)
	}
	if projectID != "" {
		s.project = projectID
	}
	s.immersive = true
	return nil
}

func (s *NavigationState) ExitImmersive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.immersive {
		return fmt.Errorf("%w: not immersive", ErrInvalidTransition)
	}
	s.immersive = false
	return nil
}
