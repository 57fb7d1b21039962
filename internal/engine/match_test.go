package engine

import (
	"errors"
	"testing"

	"github.com/Keyruu/nirius/internal/niri"
)

func TestMatcher_NoFiltersMatchEverything(t *testing.T) {
	m, err := newMatcher(Command{Kind: KindFocus})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	windows := []niri.Window{
		{ID: 1},
		{ID: 2, AppID: str("term"), Title: str("shell")},
	}
	for _, w := range windows {
		if !m.matches(w) {
			t.Errorf("expected window %d to match with no filters", w.ID)
		}
	}
}

func TestMatcher_AppIDRegex(t *testing.T) {
	m, err := newMatcher(Command{Kind: KindFocus, AppID: str("^fire.*")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.matches(niri.Window{ID: 1, AppID: str("firefox")}) {
		t.Error("expected firefox to match ^fire.*")
	}
	if m.matches(niri.Window{ID: 2, AppID: str("chromium")}) {
		t.Error("expected chromium not to match ^fire.*")
	}
}

func TestMatcher_PresentFilterAbsentAppID(t *testing.T) {
	m, err := newMatcher(Command{Kind: KindFocus, AppID: str(".*")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A window without an app-id never matches a present filter, even one
	// that matches every string.
	if m.matches(niri.Window{ID: 1}) {
		t.Error("expected window without app-id not to match a present app-id filter")
	}
}

func TestMatcher_TitleFilter(t *testing.T) {
	m, err := newMatcher(Command{Kind: KindFocus, Title: str("emacs")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.matches(niri.Window{ID: 1, Title: str("emacs@laptop")}) {
		t.Error("expected title substring regex to match")
	}
	if m.matches(niri.Window{ID: 2, Title: str("vim")}) {
		t.Error("expected non-matching title to be rejected")
	}
	if m.matches(niri.Window{ID: 3}) {
		t.Error("expected window without title not to match a present title filter")
	}
}

func TestMatcher_BothFiltersMustMatch(t *testing.T) {
	m, err := newMatcher(Command{Kind: KindFocus, AppID: str("term"), Title: str("ssh")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.matches(niri.Window{ID: 1, AppID: str("term"), Title: str("ssh root@host")}) {
		t.Error("expected window satisfying both filters to match")
	}
	if m.matches(niri.Window{ID: 2, AppID: str("term"), Title: str("htop")}) {
		t.Error("expected window failing the title filter to be rejected")
	}
}

func TestMatcher_InvalidPattern(t *testing.T) {
	_, err := newMatcher(Command{Kind: KindFocus, AppID: str("(unclosed")})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	_, err = newMatcher(Command{Kind: KindFocus, Title: str("[z-a]")})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for bad title pattern, got %v", err)
	}
}
