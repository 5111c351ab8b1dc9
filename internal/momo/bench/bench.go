package bench

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/christiantuyishime01/momoledger/internal/momo/lookup"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
)

// StrategyResult aggregates the timings one strategy produced over the whole
// test id set.
type StrategyResult struct {
	Times        []float64 `json:"times"`
	TotalTime    float64   `json:"total_time"`
	AverageTime  float64   `json:"average_time"`
	MinTime      float64   `json:"min_time"`
	MaxTime      float64   `json:"max_time"`
	SuccessCount int       `json:"success_count"`
}

// Parameters describes what a report was measured against.
type Parameters struct {
	TotalTransactions int   `json:"total_transactions"`
	TestIDs           []int `json:"test_ids"`
	TestCount         int   `json:"test_count"`
}

// Analysis is the derived part of a report: ranking, speedups and the
// qualitative notes. It is descriptive output only and never decides which
// strategy serves lookups.
type Analysis struct {
	FastestStrategy string             `json:"fastest_strategy"`
	SpeedupRatios   map[string]float64 `json:"speedup_ratios"`
	Recommendations []string           `json:"recommendations"`
}

// Report is the full benchmark outcome, serializable as-is.
type Report struct {
	ReportID   string                    `json:"report_id,omitempty"`
	Parameters Parameters                `json:"test_parameters"`
	Results    map[string]StrategyResult `json:"performance_results"`
	Analysis   Analysis                  `json:"analysis"`
	Complexity map[string]string         `json:"algorithm_complexity"`
}

// complexityNotes is keyed by strategy name; only requested strategies end up
// in a report.
var complexityNotes = map[string]string{
	lookup.NameLinearSearch:     "O(n) - Linear time complexity",
	lookup.NameDictionaryLookup: "O(1) - Constant time complexity",
	lookup.NameBinarySearch:     "O(log n) - Logarithmic time complexity",
	lookup.NameHashTableSearch:  "O(1) average, O(n) worst case",
}

// Run drives every named strategy over every test id and aggregates the
// outcome into a report. Unknown strategy names are rejected up front.
func Run(set *lookup.Set, names []string, ids []int) (Report, error) {
	if set == nil {
		return Report{}, pkgerror.NewServer(fmt.Errorf("nil lookup set"))
	}
	if len(names) == 0 {
		names = set.Names()
	}

	strategies := make([]lookup.Strategy, 0, len(names))
	for _, name := range names {
		strategy, ok := set.Strategy(name)
		if !ok {
			return Report{}, pkgerror.NewInvalidInput(fmt.Errorf("unknown strategy %q", name))
		}
		strategies = append(strategies, strategy)
	}

	timings := make(map[string][]float64, len(strategies))
	successes := make(map[string]int, len(strategies))

	for _, id := range ids {
		for _, strategy := range strategies {
			_, found, elapsed := set.Run(strategy, id)
			timings[strategy.Name()] = append(timings[strategy.Name()], elapsed)
			if found {
				successes[strategy.Name()]++
			}
		}
	}

	results := make(map[string]StrategyResult, len(strategies))
	complexity := make(map[string]string, len(strategies))
	for _, strategy := range strategies {
		name := strategy.Name()
		results[name] = aggregate(timings[name], successes[name])
		complexity[name] = complexityNotes[name]
	}

	ratios := speedupRatios(names, results)

	return Report{
		Parameters: Parameters{
			TotalTransactions: set.Count(),
			TestIDs:           ids,
			TestCount:         len(ids),
		},
		Results: results,
		Analysis: Analysis{
			FastestStrategy: fastest(names, results),
			SpeedupRatios:   ratios,
			Recommendations: recommendations(ratios, set.Count()),
		},
		Complexity: complexity,
	}, nil
}

func aggregate(times []float64, successCount int) StrategyResult {
	result := StrategyResult{
		Times:        times,
		SuccessCount: successCount,
	}
	if len(times) == 0 {
		return result
	}

	data := stats.Float64Data(times)

	// These only error on empty input, which is excluded above.
	result.TotalTime, _ = stats.Sum(data)
	result.AverageTime, _ = stats.Mean(data)
	result.MinTime, _ = stats.Min(data)
	result.MaxTime, _ = stats.Max(data)

	return result
}

// fastest picks the lowest average time; ties keep the earlier declaration.
func fastest(names []string, results map[string]StrategyResult) string {
	if len(names) == 0 {
		return ""
	}

	best := names[0]
	for _, name := range names[1:] {
		if results[name].AverageTime < results[best].AverageTime {
			best = name
		}
	}
	return best
}

// speedupRatios divides the linear-search baseline average by each strategy's
// average. A zero baseline defines every ratio as 1; a zero strategy average
// under a nonzero baseline also degrades to 1 rather than emitting an
// unserializable infinity.
func speedupRatios(names []string, results map[string]StrategyResult) map[string]float64 {
	baseline := results[lookup.NameLinearSearch].AverageTime

	ratios := make(map[string]float64, len(names))
	for _, name := range names {
		avg := results[name].AverageTime
		if baseline <= 0 || avg <= 0 {
			ratios[name] = 1
			continue
		}
		ratios[name] = baseline / avg
	}
	return ratios
}

// Recommendation thresholds, kept from the reference analysis.
const (
	dictionarySpeedupThreshold = 10
	binarySpeedupThreshold     = 2
	hashTableSpeedupThreshold  = 5
	largeDatasetThreshold      = 1000
)

func recommendations(ratios map[string]float64, recordCount int) []string {
	var notes []string

	if ratios[lookup.NameDictionaryLookup] > dictionarySpeedupThreshold {
		notes = append(notes,
			"Dictionary lookup is significantly faster than linear search. Use for frequent lookups by ID.")
	}
	if ratios[lookup.NameBinarySearch] > binarySpeedupThreshold {
		notes = append(notes,
			"Binary search provides good performance for sorted data. Consider using when data is already sorted.")
	}
	if ratios[lookup.NameHashTableSearch] > hashTableSpeedupThreshold {
		notes = append(notes,
			"Hash table search shows good performance. Consider for large datasets with frequent lookups.")
	}
	if recordCount > largeDatasetThreshold {
		notes = append(notes,
			"For large datasets (>1000 records), avoid linear search. Use dictionary lookup or hash tables for better performance.")
	}

	if len(notes) == 0 {
		notes = append(notes, "All algorithms perform similarly for small datasets.")
	}

	return notes
}
