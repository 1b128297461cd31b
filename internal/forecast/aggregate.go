package forecast

// DefaultThreshold is the score a location must exceed to be listed in an outlook.
const DefaultThreshold = 0.5

// Aggregate combines per-location score series into a sparse outlook: for each
// slot, the names whose score exceeds threshold, in input order. Slots where no
// location qualifies are omitted.
//
// All bundles are assumed to share the first bundle's PointStart and
// PointInterval; only the slots present in every series are considered.
func Aggregate(results []LocationScore, threshold float64) []GoodHour {
	if len(results) == 0 {
		return nil
	}

	n := len(results[0].Bundle.ScoreSeries)
	for _, r := range results[1:] {
		if l := len(r.Bundle.ScoreSeries); l < n {
			n = l
		}
	}

	start := results[0].Bundle.PointStart
	interval := results[0].Bundle.PointInterval

	var out []GoodHour
	for i := 0; i < n; i++ {
		var names []string
		for _, r := range results {
			// Missing scores compare false and never qualify.
			if r.Bundle.ScoreSeries[i] > threshold {
				names = append(names, r.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		out = append(out, GoodHour{
			Timestamp: start + int64(i)*interval,
			Locations: names,
		})
	}
	return out
}
