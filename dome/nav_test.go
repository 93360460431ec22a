package dome

import (
	"errors"
	"testing"
)

func TestNavigationTransitions(t *testing.T) {
	testCases := map[string]struct {
		steps    func(s *NavigationState) error
		expected ViewMode
		hasError bool
	}{
		"MapToProject": {
			steps: func(s *NavigationState) error {
				return s.SelectProject("p1")
			},
			expected: ModeProject,
		},
		"ProjectSwitch": {
			steps: func(s *NavigationState) error {
				if err := s.SelectProject("p1"); err != nil {
					return err
				}
				return s.SelectProject("p2")
			},
			expected: ModeProject,
		},
		"MapToTour": {
			steps: func(s *NavigationState) error {
				return s.StartTour()
			},
			expected: ModeTour,
		},
		"MapToPresentation": {
			steps: func(s *NavigationState) error {
				return s.StartPresentation()
			},
			expected: ModePresentation,
		},
		"TourBackToMap": {
			steps: func(s *NavigationState) error {
				if err := s.StartTour(); err != nil {
					return err
				}
				return s.Back()
			},
			expected: ModeMap,
		},
		"TourToPresentationForbidden": {
			steps: func(s *NavigationState) error {
				if err := s.StartTour(); err != nil {
					return err
				}
				return s.StartPresentation()
			},
			expected: ModeTour,
			hasError: true,
		},
		"PresentationToTourForbidden": {
			steps: func(s *NavigationState) error {
				if err := s.StartPresentation(); err != nil {
					return err
				}
				return s.StartTour()
			},
			expected: ModePresentation,
			hasError: true,
		},
		"ProjectToTourForbidden": {
			steps: func(s *NavigationState) error {
				if err := s.SelectProject("p1"); err != nil {
					return err
				}
				return s.StartTour()
			},
			expected: ModeProject,
			hasError: true,
		},
		"BackAtMapForbidden": {
			steps: func(s *NavigationState) error {
				return s.Back()
			},
			expected: ModeMap,
			hasError: true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := NewNavigationState()
			err := tt.steps(s)
			if tt.hasError {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("Expected ErrInvalidTransition, got: %v", err)
				}
			} else if err != nil {
				t.Fatal(err)
			}
			if s.Mode() != tt.expected {
				t.Errorf("Expected mode: %s, got: %s", tt.expected, s.Mode())
			}
		})
	}
}

func TestNavigationImmersive(t *testing.T) {
	s := NewNavigationState()

	// Immersive is only reachable from the project view.
	if err := s.EnterImmersive("p1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition from map, got: %v", err)
	}

	if err := s.SelectProject("p1"); err != nil {
		t.Fatal(err)
	}
	if err := s.EnterImmersive("p1"); err != nil {
		t.Fatal(err)
	}
	if !s.Immersive() {
		t.Error("Expected immersive mode")
	}
	if s.Project() != "p1" {
		t.Errorf("Expected project: p1, got: %s", s.Project())
	}

	if err := s.ExitImmersive(); err != nil {
		t.Fatal(err)
	}
	if s.Immersive() {
		t.Error("Expected immersive mode to be left")
	}
	if s.Mode() != ModeProject {
		t.Errorf("Expected mode: project, got: %s", s.Mode())
	}

	if err := s.ExitImmersive(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition when not immersive, got: %v", err)
	}
}

func TestNavigationBackLeavesImmersive(t *testing.T) {
	s := NewNavigationState()
	if err := s.SelectProject("p1"); err != nil {
		t.Fatal(err)
	}
	if err := s.EnterImmersive(""); err != nil {
		t.Fatal(err)
	}
	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if s.Mode() != ModeMap || s.Immersive() || s.Project() != "" {
		t.Errorf("Expected a clean map state, got: mode=%s immersive=%v project=%q",
			s.Mode(), s.Immersive(), s.Project())
	}
}
