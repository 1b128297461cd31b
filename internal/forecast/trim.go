package forecast

// Trim selects src[startAt..endAt] (inclusive), replicating the first and last
// source values for indices outside the source, and multiplies each by scale.
// An empty source yields an all-missing window.
func Trim(src []float64, scale float64, startAt, endAt int) Channel {
	if endAt < startAt {
		return Channel{}
	}
	out := NewChannel(endAt - startAt + 1)
	if len(src) == 0 {
		return out
	}
	last := len(src) - 1
	for i := range out {
		idx := startAt + i
		switch {
		case idx < 0:
			idx = 0
		case idx > last:
			idx = last
		}
		out[i] = scale * src[idx]
	}
	return out
}
