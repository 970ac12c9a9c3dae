package stats

import (
	"testing"

	"wallpaperhub/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{1549, "1.5K"}, // truncated, not rounded
		{1999, "1.9K"},
		{999999, "999.9K"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
		{1549999, "1.5M"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCount(tc.in), "FormatCount(%d)", tc.in)
	}
}

func TestEstimated_Deterministic(t *testing.T) {
	id := "550e8400-e29b-41d4-a716-446655440000"

	first := Estimated(id)
	second := Estimated(id)

	assert.Equal(t, first, second)
	assert.True(t, first.Estimated)
}

func TestEstimated_Bands(t *testing.T) {
	ids := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"a", "b", "c", "some-longer-identifier-string",
	}

	for _, id := range ids {
		s := Estimated(id)

		assert.GreaterOrEqual(t, s.Counts.Downloads, int64(5000), "id %q", id)
		assert.Less(t, s.Counts.Downloads, int64(55000), "id %q", id)
		assert.GreaterOrEqual(t, s.Counts.Likes, int64(1000), "id %q", id)
		assert.Less(t, s.Counts.Likes, int64(11000), "id %q", id)
		assert.GreaterOrEqual(t, s.Counts.Views, s.Counts.Downloads*3, "id %q", id)
		assert.Less(t, s.Counts.Views, s.Counts.Downloads*3+1000, "id %q", id)
	}
}

func TestEstimated_DiffersAcrossItems(t *testing.T) {
	a := Estimated("550e8400-e29b-41d4-a716-446655440000")
	b := Estimated("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	assert.NotEqual(t, a.Counts, b.Counts)
}

func TestHashCode_MatchesJavaSemantics(t *testing.T) {
	// Reference values from java.lang.String#hashCode
	assert.Equal(t, int32(0), hashCode(""))
	assert.Equal(t, int32(97), hashCode("a"))
	assert.Equal(t, int32(96354), hashCode("abc"))
	assert.Equal(t, int32(99162322), hashCode("hello"))
}

func TestAggregator_RealMode(t *testing.T) {
	agg := NewAggregator(ModeReal)

	rows := []models.WallpaperStat{
		{WallpaperID: "w-1", Views: 150, Likes: 12, Downloads: 34},
	}

	attached := agg.Attach([]string{"w-1", "w-2"}, rows)

	assert.Equal(t, Counts{Views: 150, Likes: 12, Downloads: 34}, attached["w-1"].Counts)
	assert.False(t, attached["w-1"].Estimated)

	// Missing row defaults to zero counts, still real
	assert.Equal(t, Counts{}, attached["w-2"].Counts)
	assert.False(t, attached["w-2"].Estimated)
}

func TestAggregator_EstimatedMode(t *testing.T) {
	agg := NewAggregator(ModeEstimated)

	rows := []models.WallpaperStat{
		{WallpaperID: "w-1", Views: 150, Likes: 12, Downloads: 34},
	}

	attached := agg.Attach([]string{"w-1", "w-2"}, rows)

	// Estimated mode never serves real rows, even when they exist
	for id, s := range attached {
		assert.True(t, s.Estimated, "id %q", id)
	}
	assert.NotEqual(t, int64(150), attached["w-1"].Counts.Views)
}

func TestAggregator_ModesNeverMix(t *testing.T) {
	for _, mode := range []Mode{ModeReal, ModeEstimated} {
		agg := NewAggregator(mode)
		attached := agg.Attach([]string{"w-1", "w-2", "w-3"}, nil)

		for id, s := range attached {
			assert.Equal(t, mode == ModeEstimated, s.Estimated, "mode %s id %q", mode, id)
		}
	}
}

func TestNewAggregator_UnknownModeFallsBackToReal(t *testing.T) {
	agg := NewAggregator(Mode("bogus"))
	assert.Equal(t, ModeReal, agg.Mode())
}

func TestRender_Featured(t *testing.T) {
	below := Render(Real(Counts{Views: 100}))
	assert.False(t, below.Featured)

	above := Render(Real(Counts{Views: 101}))
	assert.True(t, above.Featured)
}

func TestRender_Formats(t *testing.T) {
	d := Render(Real(Counts{Views: 1500000, Likes: 999, Downloads: 1000}))

	assert.Equal(t, "1.5M", d.Views)
	assert.Equal(t, "999", d.Likes)
	assert.Equal(t, "1.0K", d.Downloads)
	assert.False(t, d.Estimated)
}
