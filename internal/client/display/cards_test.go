package display

import (
	"strings"
	"testing"
)

func TestDescribeCard(t *testing.T) {
	cases := map[int]string{
		1111: "1 open purple diamond",
		2112: "2 open purple squiggles",
		2131: "1 solid purple squiggle",
		3323: "3 striped green ovals",
		1234: "1234",
		42:   "42",
	}
	for card, want := range cases {
		if got := DescribeCard(card); got != want {
			t.Errorf("DescribeCard(%d) = %q, want %q", card, got, want)
		}
	}
}

func TestCardGlyphs(t *testing.T) {
	got := CardGlyphs(3233)
	if !strings.HasPrefix(got, Red) || !strings.HasSuffix(got, Reset) {
		t.Fatalf("expected red coloring, got %q", got)
	}
	if strings.Count(got, "●") != 3 {
		t.Fatalf("expected three solid ovals, got %q", got)
	}
	if CardGlyphs(9999) != "?" {
		t.Fatalf("invalid card should render as ?")
	}
}

func TestFrame(t *testing.T) {
	out := Frame("Adding player", "Request failed: MAX_PLAYER_REACHED", 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != strings.Repeat("━", 10) || lines[3] != lines[0] {
		t.Fatalf("expected rules around the notice, got %q", out)
	}
	if lines[1] != "Adding player" || lines[2] != "Request failed: MAX_PLAYER_REACHED" {
		t.Fatalf("unexpected body %q", out)
	}
}
