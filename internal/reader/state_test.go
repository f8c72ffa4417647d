package reader

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroStateIsInitial(t *testing.T) {
	var s State
	assert.False(t, s.Translation)
	assert.False(t, s.Audio)
	assert.Equal(t, FontAmiri, s.CurrentFont())
	assert.Equal(t, "", s.Query())
}

func TestTranslationToggle(t *testing.T) {
	var s State
	assert.Equal(t, Control{Label: "الترجمة", Icon: "fas fa-book"}, s.TranslationControl())

	s = s.ToggleTranslation()
	assert.True(t, s.Translation)
	assert.Equal(t, Control{Label: "إخفاء الترجمة", Icon: "fas fa-eye-slash"}, s.TranslationControl())

	s = s.ToggleTranslation()
	assert.False(t, s.Translation)
}

func TestAudioAlternatesAndResetsOnEnd(t *testing.T) {
	var s State
	for i := 0; i < 5; i++ {
		next := s.ToggleAudio()
		require.NotEqual(t, s.Audio, next.Audio, "toggle %d", i)
		s = next
	}
	assert.True(t, s.Audio)
	assert.Equal(t, "إيقاف الصوت", s.AudioControl().Label)
	assert.Equal(t, "fas fa-stop", s.AudioControl().Icon)

	s = s.AudioEnded()
	assert.False(t, s.Audio)
	assert.Equal(t, Control{Label: "تشغيل الصوت", Icon: "fas fa-play"}, s.AudioControl())

	// Ending while already stopped is a no-op.
	assert.Equal(t, s, s.AudioEnded())
}

func TestFontToggle(t *testing.T) {
	var s State
	s = s.ToggleFont()
	assert.Equal(t, FontUthmani, s.CurrentFont())
	assert.Equal(t, "font-uthmani", s.CurrentFont().Class())

	s = s.ToggleFont()
	assert.Equal(t, FontAmiri, s.CurrentFont())
	assert.Equal(t, "font-amiri", s.CurrentFont().Class())
}

func TestTogglesAreIndependent(t *testing.T) {
	s := State{}.ToggleTranslation().ToggleFont()
	s = s.ToggleAudio()
	assert.True(t, s.Translation)
	assert.True(t, s.Audio)
	assert.Equal(t, FontUthmani, s.CurrentFont())

	s = s.AudioEnded()
	assert.True(t, s.Translation)
	assert.Equal(t, FontUthmani, s.CurrentFont())
}

func TestQueryRoundTrip(t *testing.T) {
	states := []State{
		{Font: FontAmiri},
		{Translation: true, Font: FontAmiri},
		{Audio: true, Font: FontAmiri},
		{Translation: true, Audio: true, Font: FontUthmani},
		{Font: FontUthmani},
	}
	for _, s := range states {
		v, err := url.ParseQuery(s.Query())
		require.NoError(t, err)
		assert.Equal(t, s, ParseState(v), "query %q", s.Query())
	}
}

func TestParseStateIgnoresJunk(t *testing.T) {
	v := url.Values{"translation": {"maybe"}, "audio": {"true"}, "font": {"comic-sans"}}
	s := ParseState(v)
	assert.False(t, s.Translation)
	assert.True(t, s.Audio)
	assert.Equal(t, FontAmiri, s.Font)
}
