package sharded

import "math"

// Stats summarizes per-shard entry counts.
type Stats struct {
	StdDeviation float64 `json:"std_deviation"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	MinMaxRatio  float64 `json:"min_max_ratio"`
}

func newStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	min, max := values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))

	var sumSquaredDiffs float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiffs += diff * diff
	}
	stdDev := math.Sqrt(sumSquaredDiffs / float64(len(values)))

	minMaxRatio := 1.0
	if max > 0 {
		minMaxRatio = min / max
	}

	return Stats{
		StdDeviation: stdDev,
		Min:          min,
		Max:          max,
		Mean:         mean,
		MinMaxRatio:  minMaxRatio,
	}
}

// DistributionStats reports how evenly entries spread across shards.
type DistributionStats struct {
	Stats
	ShardCount int `json:"shard_count"`
	// DistributionQuality combines the coefficient of variation with the
	// min/max ratio; 1.0 is a perfectly even spread.
	DistributionQuality float64 `json:"distribution_quality"`
}

// Stats samples the current shard sizes and scores their distribution.
func (m *Map[K, V]) Stats() DistributionStats {
	sizes := make([]float64, len(m.shards))
	for i, s := range m.shards {
		sizes[i] = float64(s.data.Size())
	}
	stats := newStats(sizes)

	var cv float64
	if stats.Mean > 0 {
		cv = stats.StdDeviation / stats.Mean
	}
	quality := (1.0-math.Min(1.0, cv))*0.5 + stats.MinMaxRatio*0.5

	return DistributionStats{
		Stats:               stats,
		ShardCount:          len(m.shards),
		DistributionQuality: quality,
	}
}
