package i18n

import (
	"context"
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []language.Tag{language.English, language.Indonesian}

type contextKey struct{}

type Translator struct {
	bundle        *goi18n.Bundle
	matcher       language.Matcher
	defaultLocale string
	logger        *zap.Logger
}

func New(defaultLocale string, logger ...*zap.Logger) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"locales/en.json", "locales/id.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, err
		}
	}

	if defaultLocale == "" {
		defaultLocale = language.English.String()
	}

	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &Translator{
		bundle:        bundle,
		matcher:       language.NewMatcher(supported),
		defaultLocale: defaultLocale,
		logger:        l.Named("i18n"),
	}, nil
}

// Match resolves an Accept-Language header to one of the bundled locales.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLocale
	}
	tag, _ := language.MatchStrings(t.matcher, acceptLanguage)
	base, _ := tag.Base()
	return base.String()
}

// T returns the message for id, falling back to id itself when it is unknown.
func (t *Translator) T(locale, id string, data map[string]any) string {
	localizer := goi18n.NewLocalizer(t.bundle, locale, t.defaultLocale)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("localize failed", zap.String("message_id", id), zap.String("locale", locale), zap.Error(err))
		return id
	}
	return msg
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, contextKey{}, locale)
}

func LocaleFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(contextKey{}).(string); ok {
		return l
	}
	return ""
}
