package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}
		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage picks the supported language closest to an Accept-Language
// header value, falling back to English.
func MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return LanguageFr
	}
	return LanguageEn
}

// Localize returns the message for msgKey in lang, or msgKey itself when no
// translation is loaded.
func Localize(msgKey string, lang string) string {
	if Translator == nil {
		return msgKey
	}
	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
