package forecast

// FillGaps fills missing slots that have a known value behind them and one
// within two slots ahead. Leading gaps and gaps with nothing in reach stay
// missing. The input is not modified.
func FillGaps(ch Channel) Channel {
	out := make(Channel, len(ch))
	copy(out, ch)

	last := Missing
	for i := range out {
		if IsMissing(out[i]) && !IsMissing(last) {
			switch {
			case !IsMissing(out.At(i + 1)):
				out[i] = (last + out[i+1]) / 2
			case !IsMissing(out.At(i + 2)):
				out[i] = (2*last + out[i+2]) / 3
			}
		}
		last = out[i]
	}
	return out
}
