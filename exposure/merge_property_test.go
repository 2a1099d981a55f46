package exposure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// predicateGen draws either a single predicate name or a small condition map.
func predicateGen() *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		if rapid.Bool().Draw(t, "map_form") {
			names := rapid.SliceOfNDistinct(
				rapid.SampledFrom([]string{"admin", "owner", "public"}),
				1, 3, rapid.ID[string],
			).Draw(t, "names")

			out := make(Conditions, len(names))
			for _, name := range names {
				out[name] = rapid.StringMatching(`[a-z]{1,6}`).Draw(t, name)
			}

			return out
		}

		return rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "single")
	})
}

func validOptionsGen() *rapid.Generator[Options] {
	return rapid.Custom(func(t *rapid.T) Options {
		keys := rapid.SliceOfDistinct(rapid.SampledFrom(Keys()), rapid.ID[Key]).Draw(t, "keys")

		out := make(Options, len(keys))
		for _, k := range keys {
			out[k] = rapid.String().Draw(t, string(k))
		}

		return out
	})
}

func TestProperty_ValidateOptionsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := validOptionsGen().Draw(t, "raw")

		once, err := ValidateOptions(raw)
		require.NoError(t, err)

		twice, err := ValidateOptions(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		assert.NotContains(t, once, KeyWith)
	})
}

func TestProperty_ValidateOptionsRejectsUnknown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := validOptionsGen().Draw(t, "raw")
		unknown := Key(rapid.StringMatching(`x_[a-z]{1,8}`).Draw(t, "unknown"))
		raw[unknown] = true

		_, err := ValidateOptions(raw)

		var invalid *InvalidOptionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, unknown, invalid.Key)
	})
}

func TestProperty_PredicateExtrasIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		conflicted := rapid.SampledFrom([]Key{KeyIf, KeyUnless}).Draw(t, "conflicted")
		other := KeyUnless
		if conflicted == KeyUnless {
			other = KeyIf
		}

		n := rapid.IntRange(0, 5).Draw(t, "blocks")

		c := NewConfig(nil)
		for i := 0; i < n; i++ {
			layer := Options{conflicted: predicateGen().Draw(t, "predicate")}
			if rapid.Bool().Draw(t, "with_other") {
				layer[other] = rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "other")
			}

			require.NoError(t, c.PushBlockOptions(layer))
		}

		merged, err := c.MergeOptions(Options{conflicted: predicateGen().Draw(t, "raw")})
		require.NoError(t, err)

		otherExtras, _ := other.ExtrasKey()
		assert.NotContains(t, merged, otherExtras)

		ek, _ := conflicted.ExtrasKey()
		if extras, ok := merged[ek]; ok {
			assert.NotEmpty(t, extras)
		}
	})
}

func TestProperty_SingleFormsNeverProduceExtras(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		single := rapid.StringMatching(`[a-z]{1,6}`)
		layers := rapid.SliceOfN(single, 1, 6).Draw(t, "layers")

		c := NewConfig(nil)
		for _, p := range layers {
			require.NoError(t, c.PushBlockOptions(Options{KeyIf: p, KeyUnless: p}))
		}

		last := single.Draw(t, "raw")

		merged, err := c.MergeOptions(Options{KeyIf: last})
		require.NoError(t, err)

		assert.Equal(t, last, merged[KeyIf])
		assert.Equal(t, layers[len(layers)-1], merged[KeyUnless])
		assert.NotContains(t, merged, KeyIfExtras)
		assert.NotContains(t, merged, KeyUnlessExtras)
	})
}
