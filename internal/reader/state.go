// Package reader models the per-page toggle state of the surah reader:
// translation visibility, audio playback and the verse font.
package reader

import (
	"net/url"
	"strconv"
)

// Font is a verse-text typeface.
type Font string

const (
	FontAmiri   Font = "amiri"
	FontUthmani Font = "uthmani"
)

// Class returns the CSS class applied to verse text for this font.
func (f Font) Class() string {
	return "font-" + string(f)
}

// Control is the label and icon shown on a toolbar toggle.
type Control struct {
	Label string
	Icon  string
}

// State is the toggle state for one surah page view. The zero value is the
// initial state: translation hidden, audio stopped, Amiri font.
type State struct {
	Translation bool
	Audio       bool
	Font        Font
}

// ToggleTranslation flips translation visibility.
func (s State) ToggleTranslation() State {
	s.Translation = !s.Translation
	return s
}

// ToggleAudio alternates between playing and paused.
func (s State) ToggleAudio() State {
	s.Audio = !s.Audio
	return s
}

// AudioEnded resets playback when the recitation finishes.
func (s State) AudioEnded() State {
	s.Audio = false
	return s
}

// ToggleFont alternates between the Amiri and Uthmani typefaces.
func (s State) ToggleFont() State {
	if s.CurrentFont() == FontAmiri {
		s.Font = FontUthmani
	} else {
		s.Font = FontAmiri
	}
	return s
}

// CurrentFont returns the active font, defaulting to Amiri.
func (s State) CurrentFont() Font {
	if s.Font == FontUthmani {
		return FontUthmani
	}
	return FontAmiri
}

// TranslationControl is the translation toggle as it should read in this state.
func (s State) TranslationControl() Control {
	if s.Translation {
		return Control{Label: "إخفاء الترجمة", Icon: "fas fa-eye-slash"}
	}
	return Control{Label: "الترجمة", Icon: "fas fa-book"}
}

// AudioControl is the audio toggle as it should read in this state.
func (s State) AudioControl() Control {
	if s.Audio {
		return Control{Label: "إيقاف الصوت", Icon: "fas fa-stop"}
	}
	return Control{Label: "تشغيل الصوت", Icon: "fas fa-play"}
}

// FontControl names the font the toggle will switch to.
func (s State) FontControl() Control {
	if s.CurrentFont() == FontAmiri {
		return Control{Label: "الخط العثماني", Icon: "fas fa-font"}
	}
	return Control{Label: "خط أميري", Icon: "fas fa-font"}
}

// Query encodes the state as URL query parameters. The initial state
// encodes to an empty string.
func (s State) Query() string {
	v := url.Values{}
	if s.Translation {
		v.Set("translation", "1")
	}
	if s.Audio {
		v.Set("audio", "1")
	}
	if s.CurrentFont() != FontAmiri {
		v.Set("font", string(s.CurrentFont()))
	}
	return v.Encode()
}

// ParseState reads a state from query parameters. Unknown or malformed
// values fall back to the initial state for that field.
func ParseState(v url.Values) State {
	var s State
	s.Translation = parseFlag(v.Get("translation"))
	s.Audio = parseFlag(v.Get("audio"))
	if Font(v.Get("font")) == FontUthmani {
		s.Font = FontUthmani
	} else {
		s.Font = FontAmiri
	}
	return s
}

func parseFlag(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}
