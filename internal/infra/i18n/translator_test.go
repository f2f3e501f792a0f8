package i18n

import (
	"io"
	"log/slog"
	"testing"

	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en", newDiscardLogger())
	data := map[string]any{"EventName": "Go meetup"}

	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "default language", lang: "", want: "New update for event Go meetup"},
		{name: "english", lang: "en", want: "New update for event Go meetup"},
		{name: "korean", lang: "ko", want: "Go meetup 이벤트에 새 소식이 있습니다"},
		{name: "unknown language falls back", lang: "fr", want: "New update for event Go meetup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, service.MessagePushEventUpdateTitle, data))
		})
	}
}

func TestTranslator_UnknownMessage(t *testing.T) {
	tr := NewTranslator("en", newDiscardLogger())

	assert.Equal(t, "missing.key", tr.T("en", "missing.key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestNewTranslator_InvalidLocale(t *testing.T) {
	tr := NewTranslator("!!", newDiscardLogger())

	assert.Equal(t, "en", tr.defaultLanguage.String())
}
