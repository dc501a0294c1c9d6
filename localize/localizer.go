package localize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
)

// DisplayLimit is the maximum number of schemes returned to the applicant.
const DisplayLimit = 6

// ErrTranslatorRequired is returned when a Localizer is built without a translator.
var ErrTranslatorRequired = errors.New("translator is required")

// Report describes how a Localize call resolved each entry.
type Report struct {
	// Cached entries used a valid corpus pre-translation.
	Cached int
	// Translated entries used the batch translation response.
	Translated int
	// Fallback entries kept their English text.
	Fallback int
	// BatchSize is the number of entries sent for translation, 0 if no call was made.
	BatchSize int
	// Err wraps core.ErrTranslation when the batch call failed. It is never
	// fatal; the affected entries are already in Fallback.
	Err error
}

// Localizer renders schemes in the applicant's language.
type Localizer struct {
	translator ai.SchemeTranslator
	limit      int
	logger     *slog.Logger
}

// Option configures a Localizer.
type Option func(*Localizer)

// WithLogger sets a custom logger. If nil, uses the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocalizer creates a Localizer that uses translator for entries the
// corpus has no valid translation for.
func NewLocalizer(translator ai.SchemeTranslator, opts ...Option) (*Localizer, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}
	l := &Localizer{
		translator: translator,
		limit:      DisplayLimit,
		logger:     slog.Default().With("component", "localizer"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Localize caps schemes to DisplayLimit and returns them in lang. Corpus
// pre-translations are used when their name is written in the target
// script. Everything else goes to the translator in one batch. Entries the
// batch does not cover stay in English. The input schemes are not modified.
func (l *Localizer) Localize(ctx context.Context, schemes []*core.ScoredScheme, lang core.Language) ([]core.LocalizedScheme, Report) {
	if len(schemes) > l.limit {
		schemes = schemes[:l.limit]
	}

	out := make([]core.LocalizedScheme, len(schemes))
	for i, s := range schemes {
		out[i] = english(s)
	}

	var report Report
	if lang == core.LanguageEnglish || lang == "" {
		return out, report
	}

	pending := make([]ai.TranslationItem, 0, len(schemes))
	for i, s := range schemes {
		if t, ok := s.Scheme.Translation(lang); ok && core.InScript(t.Name, lang) {
			apply(&out[i], t.Name, t.Eligibility, t.Benefits, lang)
			report.Cached++
			continue
		}
		pending = append(pending, ai.TranslationItem{
			Index:       i,
			Name:        s.Scheme.Name,
			Eligibility: s.Scheme.Eligibility,
			Benefits:    s.Scheme.Benefits,
		})
	}

	if len(pending) == 0 {
		return out, report
	}
	report.BatchSize = len(pending)

	translated, err := l.translator.TranslateSchemes(ctx, string(lang), pending)
	if err != nil {
		report.Err = fmt.Errorf("%w: %w", core.ErrTranslation, err)
		report.Fallback = len(pending)
		l.logger.Warn("batch translation failed, keeping English text",
			"language", lang, "count", len(pending), "err", err)
		return out, report
	}

	byIndex := make(map[int]ai.TranslationItem, len(translated))
	for _, item := range translated {
		byIndex[item.Index] = item
	}

	for _, p := range pending {
		item, ok := byIndex[p.Index]
		if !ok || !core.InScript(item.Name, lang) {
			report.Fallback++
			continue
		}
		apply(&out[p.Index], item.Name, item.Eligibility, item.Benefits, lang)
		report.Translated++
	}

	if report.Fallback > 0 {
		l.logger.Debug("some schemes left untranslated",
			"language", lang, "fallback", report.Fallback)
	}
	return out, report
}

// english builds the display entry from the canonical fields.
func english(s *core.ScoredScheme) core.LocalizedScheme {
	return core.LocalizedScheme{
		Id:          strconv.FormatUint(uint64(s.Scheme.Id), 10),
		Name:        s.Scheme.Name,
		Eligibility: s.Scheme.Eligibility,
		Benefits:    s.Scheme.Benefits,
		ApplyLink:   s.Scheme.ApplyLink,
		Category:    s.Scheme.Category,
		TargetState: s.Scheme.TargetState,
		SchemeLevel: s.Scheme.Level,
		Similarity:  roundSimilarity(s.Similarity),
	}
}

// apply overwrites display fields with translated text. Eligibility and
// benefits keep the English text when the translation is empty or not in
// the target script.
func apply(entry *core.LocalizedScheme, name, eligibility, benefits string, lang core.Language) {
	entry.Name = name
	if eligibility != "" && core.InScript(eligibility, lang) {
		entry.Eligibility = eligibility
	}
	if benefits != "" && core.InScript(benefits, lang) {
		entry.Benefits = benefits
	}
}

func roundSimilarity(v float32) *float32 {
	r := float32(math.Round(float64(v)*1000) / 1000)
	return &r
}
