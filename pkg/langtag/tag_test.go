package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

func TestParent(t *testing.T) {
	t.Parallel()

	t.Run("walks full generalization chain", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag := reg.MustParse("zh-gan-Hans-US-nedis-x-twain")

		var chain []string
		for p := tag.Parent(); p != nil; p = p.Parent() {
			chain = append(chain, p.String())
		}
		assert.Equal(t, []string{
			"zh-gan-Hans-US-nedis",
			"zh-gan-Hans-US",
			"zh-gan-Hans",
			"zh-gan",
			"zh",
		}, chain)
	})

	t.Run("bare language has no parent", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()
		assert.Nil(t, reg.MustParse("en").Parent())
	})

	t.Run("parents are interned", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()
		parent := reg.MustParse("de-CH").Parent()
		assert.Same(t, reg.MustParse("de"), parent)
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	reg := langtag.NewRegistry()

	t.Run("same base language", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.MustParse("en-US").Matches(reg.MustParse("en-GB")))
	})

	t.Run("different base language", func(t *testing.T) {
		t.Parallel()
		assert.False(t, reg.MustParse("en").Matches(reg.MustParse("de")))
	})

	t.Run("nil other", func(t *testing.T) {
		t.Parallel()
		assert.False(t, reg.MustParse("en").Matches(nil))
	})

	t.Run("one of a list", func(t *testing.T) {
		t.Parallel()
		candidates := []*langtag.Tag{reg.MustParse("fr"), reg.MustParse("de-AT")}
		assert.True(t, reg.MustParse("de").MatchesOneOf(candidates))
		assert.False(t, reg.MustParse("it").MatchesOneOf(candidates))
	})
}

func TestEquality(t *testing.T) {
	t.Parallel()

	reg := langtag.NewRegistry()

	t.Run("identical tags score one", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"en", "de-CH", "zh-gan-Hans-US-nedis-x-twain"} {
			tag := reg.MustParse(text)
			assert.InDelta(t, 1.0, tag.Equality(tag), 0, "tag %s", text)
		}
	})

	t.Run("different language scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, reg.MustParse("en-US").Equality(reg.MustParse("de-US")))
	})

	t.Run("score decreases with distance", func(t *testing.T) {
		t.Parallel()
		requested := reg.MustParse("de-CH")
		near := requested.Equality(reg.MustParse("de-CH-1901"))
		far := requested.Equality(reg.MustParse("de"))
		assert.Greater(t, near, far)
		assert.Less(t, near, 1.0)
	})

	t.Run("absent on both sides is ignored", func(t *testing.T) {
		t.Parallel()
		// Neither side sets script/variant/extension; only language and
		// region participate, and both match.
		a := reg.MustParse("pt-BR")
		b := reg.MustParse("pt-BR")
		assert.InDelta(t, 1.0, a.Equality(b), 0)
	})

	t.Run("one-sided subtag reduces score", func(t *testing.T) {
		t.Parallel()
		base := reg.MustParse("sr")
		withScript := reg.MustParse("sr-Latn")
		withRegion := reg.MustParse("sr-RS")
		// Script weighs more than region, so its absence costs more.
		assert.Less(t, base.Equality(withScript), base.Equality(withRegion))
	})
}

func TestPickBestMatching(t *testing.T) {
	t.Parallel()

	reg := langtag.NewRegistry()

	t.Run("picks closest candidate", func(t *testing.T) {
		t.Parallel()
		candidates := []*langtag.Tag{
			reg.MustParse("de"),
			reg.MustParse("fr-CH"),
			reg.MustParse("es"),
		}
		best := reg.MustParse("de-CH-1901").PickBestMatching(candidates)
		require.NotNil(t, best)
		assert.Same(t, candidates[0], best)
	})

	t.Run("exact match beats base language", func(t *testing.T) {
		t.Parallel()
		candidates := []*langtag.Tag{
			reg.MustParse("de"),
			reg.MustParse("de-CH"),
		}
		best := reg.MustParse("de-CH").PickBestMatching(candidates)
		assert.Same(t, candidates[1], best)
	})

	t.Run("no shared language yields nil", func(t *testing.T) {
		t.Parallel()
		candidates := []*langtag.Tag{
			reg.MustParse("de"),
			reg.MustParse("fr-CH"),
			reg.MustParse("es"),
		}
		assert.Nil(t, reg.MustParse("it").PickBestMatching(candidates))
	})

	t.Run("tie keeps first seen", func(t *testing.T) {
		t.Parallel()
		candidates := []*langtag.Tag{
			reg.MustParse("en-GB"),
			reg.MustParse("en-AU"),
		}
		best := reg.MustParse("en").PickBestMatching(candidates)
		assert.Same(t, candidates[0], best)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, reg.MustParse("en").PickBestMatching(nil))
	})
}
