package forecast

// SourceRecord is one provider sample. Value may be Missing.
type SourceRecord struct {
	Time  int64
	Value float64
}

// Resample places records onto the grid by exact timestamp match.
// Records must be sorted ascending; the cursor never moves back, so a record
// that is out of order or falls between grid slots is dropped.
func Resample(grid TimeGrid, records []SourceRecord) Channel {
	out := NewChannel(len(grid))
	idx := 0
	for _, rec := range records {
		for idx < len(grid) && grid[idx] < rec.Time {
			idx++
		}
		if idx < len(grid) && grid[idx] == rec.Time {
			out[idx] = rec.Value
		}
	}
	return out
}

// Merge keeps first's value where present and falls back to second's.
// The result has first's length.
func Merge(first, second Channel) Channel {
	out := make(Channel, len(first))
	for i, v := range first {
		if IsMissing(v) {
			v = second.At(i)
		}
		out[i] = v
	}
	return out
}

// ResampleMerged resamples each stream onto the grid and merges them in order,
// so earlier streams win over later ones.
func ResampleMerged(grid TimeGrid, streams ...[]SourceRecord) Channel {
	out := NewChannel(len(grid))
	for _, records := range streams {
		out = Merge(out, Resample(grid, records))
	}
	return out
}
