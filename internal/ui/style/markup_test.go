package style

import (
	"os"
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello room", "hello room"},
		{"single color", "&dWelcome", "Welcome"},
		{"mixed codes", "&8> &7say <message>", "> say <message>"},
		{"decorations", "&lbold&r plain &nunder", "bold plain under"},
		{"uppercase codes", "&DWelcome &LHome", "Welcome Home"},
		{"invalid code kept", "5 & 6 are &znumbers", "5 & 6 are &znumbers"},
		{"trailing ampersand", "fish & chips &", "fish & chips &"},
		{"only codes", "&a&b&c", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.input); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderMarkup_DisabledStrips(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("CHATMUX_NO_COLOR")

	Init(false, nil)

	got := RenderMarkup("&d&lWelcome &r&7to the room")
	want := "Welcome to the room"
	if got != want {
		t.Errorf("RenderMarkup disabled = %q, want %q", got, want)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("RenderMarkup disabled contains ANSI codes: %q", got)
	}
}

func TestRenderMarkup_EnabledEmitsANSI(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("CHATMUX_NO_COLOR")

	Init(true, nil)

	got := RenderMarkup("&aWelcome")
	if !strings.Contains(got, "Welcome") {
		t.Errorf("RenderMarkup output %q lost the text", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("RenderMarkup enabled should contain ANSI codes: %q", got)
	}
}

func TestRenderMarkup_PlainSegmentsUntouched(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("CHATMUX_NO_COLOR")

	Init(true, nil)

	// Text before any code and after &r carries no styling.
	got := RenderMarkup("before &astyled&r after")
	if !strings.HasPrefix(got, "before ") {
		t.Errorf("leading plain segment was styled: %q", got)
	}
	if !strings.HasSuffix(got, " after") {
		t.Errorf("trailing plain segment was styled: %q", got)
	}
}

func TestRenderMarkup_InvalidCodeLiteral(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("CHATMUX_NO_COLOR")

	Init(true, nil)

	got := RenderMarkup("Tom & Jerry &z")
	if got != "Tom & Jerry &z" {
		t.Errorf("RenderMarkup(%q) = %q, want unchanged", "Tom & Jerry &z", got)
	}
}
