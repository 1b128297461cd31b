package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGLERLTime(t *testing.T) {
	want := time.Date(2021, 6, 1, 13, 0, 0, 0, time.UTC)

	for _, tok := range []string{"21-06-01 13Z", " 21-06-01 13Z\n", "21-06-01-13Z"} {
		got, err := ParseGLERLTime(tok)
		require.NoError(t, err, tok)
		assert.True(t, want.Equal(got), "%q parsed as %s", tok, got)
	}
}

func TestParseGLERLTimeMalformed(t *testing.T) {
	for _, tok := range []string{"", "21-06", "21-06-01", "21-06-01 xxZ"} {
		_, err := ParseGLERLTime(tok)
		assert.True(t, errors.Is(err, ErrMalformedPayload), "%q: %v", tok, err)
	}
}

func TestParseWaveTimesNeedsTwoTokens(t *testing.T) {
	_, _, err := parseWaveTimes("21-06-01 00Z")

	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestParseScaled(t *testing.T) {
	got, err := ParseScaled(2, "1.5, 2,,3,\n")

	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 6}, got)

	_, err = ParseScaled(1, "1,abc")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestOWMChannelPrefersHourlyAndFillsGaps(t *testing.T) {
	grid := NewTimeGrid(0, 4*3600)
	hourly := HourlyPayload{Hourly: []HourlyEntry{
		{Dt: 0, Temp: f64(10)},
		{Dt: 3600},
		{Dt: 7200, Temp: f64(14)},
	}}
	var far ThreeHourlyEntry
	far.Dt = 0
	far.Main.Temp = f64(99)
	var later ThreeHourlyEntry
	later.Dt = 4 * 3600
	later.Main.Temp = f64(20)

	got := owmChannel(grid, FieldTemperature, hourly, ThreeHourlyPayload{List: []ThreeHourlyEntry{far, later}})

	// slot 1 midpoint of 10 and 14, slot 3 midpoint of 14 and 20
	assertChannel(t, []float64{10, 12, 14, 17, 20}, got)
}

func TestOWMFieldsCoverEveryField(t *testing.T) {
	e := HourlyEntry{Temp: f64(1), FeelsLike: f64(2), WindSpeed: f64(3), WindGust: f64(4), WindDeg: f64(5)}
	var te ThreeHourlyEntry
	te.Main.Temp, te.Main.FeelsLike = f64(1), f64(2)
	te.Wind.Speed, te.Wind.Gust, te.Wind.Deg = f64(3), f64(4), f64(5)

	for _, f := range []Field{FieldTemperature, FieldFeelsLike, FieldWindSpeed, FieldGust, FieldWindDirection} {
		acc, ok := owmFields[f]
		require.True(t, ok, f)
		assert.Equal(t, *acc.hourly(e), *acc.threeHourly(te), f)
	}
}
