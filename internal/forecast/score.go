package forecast

import "math"

const smaWindow = 5

// Ceilings of the wind-magnitude factor. Wind is in knots, gusts in m/s.
const (
	windCeiling    = 12
	windSMACeiling = 12
	gustCeiling    = 8
)

// movingAverage is a trailing simple moving average over a fixed window.
// Missing values neither enter the sum nor count.
type movingAverage struct {
	window int
	sum    float64
	count  int
}

func newMovingAverage(window int) *movingAverage {
	return &movingAverage{window: window}
}

// next adds ch[i], drops ch[i-window] and returns the current average.
func (m *movingAverage) next(ch Channel, i int) float64 {
	if v := ch.At(i); !IsMissing(v) {
		m.sum += v
		m.count++
	}
	if i >= m.window {
		if v := ch.At(i - m.window); !IsMissing(v) {
			m.sum -= v
			m.count--
		}
	}
	if m.count == 0 {
		return Missing
	}
	return m.sum / float64(m.count)
}

// Score computes the favorability of every slot of ch.WindSpeed.
// A slot with any missing input scores Missing.
func Score(ch Channels, idealWindDir float64) Channel {
	windSMA := newMovingAverage(smaWindow)
	waveSMA := newMovingAverage(smaWindow)

	out := NewChannel(len(ch.WindSpeed))
	for i := range out {
		windAvg := windSMA.next(ch.WindSpeed, i)
		waveAvg := waveSMA.next(ch.WaveHeight, i)

		wind := ch.WindSpeed.At(i)
		wave := ch.WaveHeight.At(i)
		temp := ch.Temperature.At(i)
		gust := ch.Gust.At(i)
		deg := ch.WindDirection.At(i)

		if anyMissing(wind, windAvg, wave, waveAvg, temp, gust, deg) {
			continue
		}

		windScore := DirectionFactor(idealWindDir, deg) *
			windFactor(windCeiling, wind) *
			windFactor(windSMACeiling, windAvg) *
			windFactor(gustCeiling, gust)
		waveScore := waveFactor(wave) * waveFactor(waveAvg) / 25

		out[i] = TemperatureFactor(temp) * waveScore * windScore
	}
	return out
}

// DirectionFactor is 1 when the wind blows from the ideal direction and
// falls linearly with the absolute difference in degrees. It is not clamped.
func DirectionFactor(idealDir, deg float64) float64 {
	d := math.Abs(idealDir - deg)
	return (1.2 - d/360) / 1.2
}

// TemperatureFactor peaks near 15°C. Beyond a deviation of ~14°C the
// denominator follows the squared deviation so the factor stays bounded.
func TemperatureFactor(temp float64) float64 {
	d2 := (temp - 15) * (temp - 15)
	denom := 200.0
	if temp != 15 {
		denom = math.Max(200, d2)
	}
	return (temp + 10) * (40 - temp) / denom / 3.125
}

func windFactor(ceiling, v float64) float64 {
	return clamp((ceiling-v)/4, 0.1, 1)
}

func waveFactor(x float64) float64 {
	return clamp((25-16*x*x)/5, 0, 5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func anyMissing(vs ...float64) bool {
	for _, v := range vs {
		if IsMissing(v) {
			return true
		}
	}
	return false
}
