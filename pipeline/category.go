package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/localize"
	"github.com/poiesic/yojana/storage"
)

// CategoryRequest asks for the schemes filed under one category.
type CategoryRequest struct {
	Category string
	// Language defaults to English when empty or unsupported.
	Language core.Language
}

// ListByCategory returns up to localize.DisplayLimit schemes whose category
// matches req.Category after alias resolution, in ID order and localized to
// req.Language. No profile is extracted and no eligibility rules apply. The
// result follows the same conventions as Query: an empty category is
// ResultEmpty with the sentinel entry and failures are ResultError.
func (p *Pipeline) ListByCategory(ctx context.Context, req CategoryRequest) *core.QueryResult {
	start := time.Now()
	lang := core.LanguageEnglish
	if parsed, err := core.ParseLanguage(string(req.Language)); err == nil {
		lang = parsed
	}

	result := p.listByCategory(ctx, req.Category, lang)

	elapsed := time.Since(start)
	if result.Err != nil {
		p.logger.Error("category listing failed",
			"category", req.Category,
			"kind", core.ErrorKind(result.Err),
			"elapsed", elapsed,
			"err", result.Err)
	} else {
		p.logger.Info("category listing complete",
			"category", req.Category,
			"result", result.Kind.String(),
			"language", result.Language,
			"count", len(result.Schemes),
			"elapsed", elapsed)
	}
	return result
}

func (p *Pipeline) listByCategory(ctx context.Context, category string, lang core.Language) *core.QueryResult {
	category = core.NormalizeCategory(category)
	if category == "" {
		return Failure(fmt.Errorf("%w: category required", core.ErrInput), lang, core.RegionAll)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	filter := storage.Filter{}.And(storage.Eq(storage.FieldCategory, category))
	schemes, err := p.schemes.ListSchemes(ctx, filter, localize.DisplayLimit)
	if err != nil {
		return Failure(classify(ctx, fmt.Errorf("%w: %w", core.ErrRetrieval, err)), lang, core.RegionAll)
	}

	listing := &core.ApplicantProfile{Language: lang, Region: core.RegionAll}
	if len(schemes) == 0 {
		return NoResults(listing)
	}

	unranked := make([]*core.ScoredScheme, len(schemes))
	for i, s := range schemes {
		unranked[i] = &core.ScoredScheme{Scheme: s}
	}
	localized, report := p.localizer.Localize(ctx, unranked, lang)
	if err := ctx.Err(); err != nil {
		return Failure(fmt.Errorf("%w: %w", core.ErrPipeline, err), lang, core.RegionAll)
	}
	if report.Err != nil {
		p.logger.Debug("category listing kept English text", "category", category, "fallback", report.Fallback)
	}

	// A listing has no query to be similar to.
	for i := range localized {
		localized[i].Similarity = nil
	}
	return Assemble(localized, listing)
}

