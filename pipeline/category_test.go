package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/localize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inCategory(name, category string) *core.Scheme {
	s := scheme(name, 0.5)
	s.Category = category
	return s
}

func TestListByCategory_ReturnsMatchingSchemes(t *testing.T) {
	f := newFixture(t,
		inCategory("Ayushman Bharat", "health"),
		inCategory("Janani Suraksha", "health"),
		inCategory("PM-KISAN", "agriculture"),
	)
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: " Health "})

	require.NoError(t, result.Err)
	assert.Equal(t, core.ResultOK, result.Kind)
	assert.Equal(t, core.LanguageEnglish, result.Language)
	assert.Equal(t, core.RegionAll, result.Region)
	var names []string
	for _, s := range result.Schemes {
		names = append(names, s.Name)
		assert.Nil(t, s.Similarity, "listings are not ranked")
		assert.Equal(t, "health", s.Category)
	}
	assert.ElementsMatch(t, []string{"Ayushman Bharat", "Janani Suraksha"}, names)
	assert.Equal(t, 0, f.embedder.CallCount())
	assert.Equal(t, 0, f.extractor.CallCount())
}

func TestListByCategory_ResolvesAliases(t *testing.T) {
	f := newFixture(t, inCategory("Old Age Pension", "pension"))
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "Social Security"})

	require.Equal(t, core.ResultOK, result.Kind)
	require.Len(t, result.Schemes, 1)
	assert.Equal(t, "Old Age Pension", result.Schemes[0].Name)
}

func TestListByCategory_Localizes(t *testing.T) {
	cached := inCategory("Old Age Pension", "pension")
	cached.Translations = map[core.Language]core.Translation{
		core.LanguageHindi: {Name: "वृद्धावस्था पेंशन", Benefits: "मासिक पेंशन"},
	}
	f := newFixture(t, cached, inCategory("Widow Pension", "pension"))
	f.translator.TranslateSchemesFunc = func(ctx context.Context, target string, items []ai.TranslationItem) ([]ai.TranslationItem, error) {
		assert.Equal(t, "hi", target)
		out := make([]ai.TranslationItem, len(items))
		for i, item := range items {
			out[i] = ai.TranslationItem{Index: item.Index, Name: "विधवा पेंशन"}
		}
		return out, nil
	}
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "pension", Language: core.LanguageHindi})

	require.Equal(t, core.ResultOK, result.Kind)
	assert.Equal(t, core.LanguageHindi, result.Language)
	var names []string
	for _, s := range result.Schemes {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"वृद्धावस्था पेंशन", "विधवा पेंशन"}, names)
	assert.Equal(t, 1, f.translator.CallCount(), "only the uncached scheme is sent for translation")
}

func TestListByCategory_CapsToDisplayLimit(t *testing.T) {
	var schemes []*core.Scheme
	for i := 0; i < localize.DisplayLimit+4; i++ {
		schemes = append(schemes, inCategory(fmt.Sprintf("health-%02d", i), "health"))
	}
	f := newFixture(t, schemes...)
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "health"})

	require.Equal(t, core.ResultOK, result.Kind)
	assert.Len(t, result.Schemes, localize.DisplayLimit)
}

func TestListByCategory_EmptyCategoryGivesNoResults(t *testing.T) {
	f := newFixture(t, inCategory("PM-KISAN", "agriculture"))
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "housing", Language: core.LanguageBhojpuri})

	require.NoError(t, result.Err)
	assert.Equal(t, core.ResultEmpty, result.Kind)
	assert.Equal(t, core.LanguageBhojpuri, result.Language)
	require.Len(t, result.Schemes, 1)
	assert.Equal(t, NoResultsID, result.Schemes[0].Id)
	assert.Equal(t, localize.NoResultsMessage(core.LanguageBhojpuri), result.Schemes[0].Name)
	assert.Equal(t, 0, f.translator.CallCount())
}

func TestListByCategory_BlankCategoryIsInputError(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "  ", Language: core.LanguageHindi})

	assert.Equal(t, core.ResultError, result.Kind)
	assert.ErrorIs(t, result.Err, core.ErrInput)
	assert.Equal(t, localize.ErrorMessage(core.LanguageHindi), result.Schemes[0].Name)
}

func TestListByCategory_UnsupportedLanguageIsEnglish(t *testing.T) {
	f := newFixture(t, inCategory("PM-KISAN", "agriculture"))
	p := f.pipeline(t)

	result := p.ListByCategory(context.Background(), CategoryRequest{Category: "agriculture", Language: "fr"})

	assert.Equal(t, core.LanguageEnglish, result.Language)
	assert.Equal(t, 0, f.translator.CallCount())
}

func TestListByCategory_Cancelled(t *testing.T) {
	f := newFixture(t, inCategory("PM-KISAN", "agriculture"))
	p := f.pipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := p.ListByCategory(ctx, CategoryRequest{Category: "agriculture"})

	assert.Equal(t, core.ResultError, result.Kind)
	assert.ErrorIs(t, result.Err, core.ErrPipeline)
	assert.ErrorIs(t, result.Err, context.Canceled)
}
