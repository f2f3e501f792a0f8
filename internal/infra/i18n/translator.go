// Package i18n renders localised message templates with go-i18n.
package i18n

import (
	"embed"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/service"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.ko.toml"}

// Translator wraps a go-i18n bundle with a default language.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator from the embedded catalogues.
// Unparseable default locales fall back to English.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn("Failed to load locale file", slog.String("file", file), slog.Any("error", err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// NewServiceTranslator is the fx constructor; push.language selects the default locale.
func NewServiceTranslator(cfg *config.Config, logger *slog.Logger) service.Translator {
	locale := "en"
	if cfg.Push != nil && cfg.Push.Language != "" {
		locale = cfg.Push.Language
	}

	return NewTranslator(locale, logger)
}

// T renders messageID for lang, falling back to the default language and then to the ID itself.
func (t *Translator) T(lang, messageID string, data map[string]any) string {
	if messageID == "" {
		return ""
	}

	languages := make([]string, 0, 2)
	if lang != "" {
		languages = append(languages, lang)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("Localize failed",
			slog.String("message_id", messageID),
			slog.Any("languages", languages),
			slog.Any("error", err),
		)

		return messageID
	}

	return msg
}
