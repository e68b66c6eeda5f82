package langtag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("normalizes subtag casing", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag, err := reg.Parse("ZH-GAN-hans-us-NEDIS-X-TWAIN")
		require.NoError(t, err)
		assert.Equal(t, "zh-gan-Hans-US-nedis-x-twain", tag.String())
		assert.Equal(t, "zh", tag.Language())
		assert.Equal(t, "gan", tag.ExtendedLanguage())
		assert.Equal(t, "Hans", tag.Script())
		assert.Equal(t, "US", tag.Region())
		assert.Equal(t, "nedis", tag.Variant())
		assert.Equal(t, "x-twain", tag.Extension())
	})

	t.Run("interns case-insensitively", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		a, err := reg.Parse("de-ch")
		require.NoError(t, err)
		b, err := reg.Parse("DE-CH")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("numeric region", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag, err := reg.Parse("es-419")
		require.NoError(t, err)
		assert.Equal(t, "419", tag.Region())
	})

	t.Run("digit-led variant", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag, err := reg.Parse("de-CH-1901")
		require.NoError(t, err)
		assert.Equal(t, "CH", tag.Region())
		assert.Equal(t, "1901", tag.Variant())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		for _, text := range []string{
			"",
			"-abc",
			"a",
			"abcd",
			"en-",
			"en--US",
			"en US",
			"de-CH-x", // extension singleton without subtags
			"123",
		} {
			_, err := reg.Parse(text)
			require.Error(t, err, "input %q", text)
			assert.ErrorIs(t, err, langtag.ErrInvalidTag)
		}
	})

	t.Run("grammar is anchored", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		_, err := reg.Parse("en-US extra")
		assert.ErrorIs(t, err, langtag.ErrInvalidTag)
	})
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	t.Run("panics on invalid tag", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()
		assert.Panics(t, func() { reg.MustParse("-abc") })
	})
}

func TestFromSubtags(t *testing.T) {
	t.Parallel()

	t.Run("builds interned tag from parts", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag, err := reg.FromSubtags("ZH", "", "HANS", "cn", "", "")
		require.NoError(t, err)
		assert.Equal(t, "zh-Hans-CN", tag.String())
		assert.Same(t, reg.MustParse("zh-Hans-CN"), tag)
	})

	t.Run("omits absent subtags", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		tag, err := reg.FromSubtags("en", "", "", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "en", tag.String())
	})

	t.Run("validates subtags", func(t *testing.T) {
		t.Parallel()
		reg := langtag.NewRegistry()

		_, err := reg.FromSubtags("en", "", "toolongscript", "", "", "")
		assert.ErrorIs(t, err, langtag.ErrInvalidTag)
	})
}

func TestRegistryIsolation(t *testing.T) {
	t.Parallel()

	t.Run("separate registries intern separately", func(t *testing.T) {
		t.Parallel()
		a := langtag.NewRegistry().MustParse("en-US")
		b := langtag.NewRegistry().MustParse("en-US")
		assert.NotSame(t, a, b)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("package-level functions share the default registry", func(t *testing.T) {
		t.Parallel()
		a := langtag.MustParse("nb-NO")
		b, err := langtag.Parse("NB-no")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})
}

func TestRegistryConcurrency(t *testing.T) {
	t.Parallel()

	reg := langtag.NewRegistry()
	texts := []string{"en", "en-US", "de", "de-CH", "fr", "ja", "zh-Hans"}

	var wg sync.WaitGroup
	results := make([][]*langtag.Tag, 8)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			tags := make([]*langtag.Tag, len(texts))
			for j, text := range texts {
				tags[j] = reg.MustParse(text)
			}
			results[slot] = tags
		}(i)
	}
	wg.Wait()

	for _, tags := range results[1:] {
		for j := range texts {
			assert.Same(t, results[0][j], tags[j])
		}
	}
}
