package perf

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/fastcoll/fastcoll/cmd/util"
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fastmap"
	"github.com/fastcoll/fastcoll/lib/collection/sharded"
	"github.com/fastcoll/fastcoll/lib/collection/sortedmap"
	"github.com/fastcoll/fastcoll/lib/collection/views"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// PerfCmd is the in-process performance testing tool for the map
	// engines and the concurrency views layered on top of them.
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for fastcoll engines and views",
		Long:    "",
		RunE:    run,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix  = "__test"
	perfNumThreads = 10
	perfKeySpread  = 100
	perfSkip       = make([]string, 0)
	perfEngines    = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. put,get)"))
	key = "engines"
	PerfCmd.Flags().String(key, "", util.WrapString("Engines to benchmark (comma separated - e.g. fastmap,sharded; empty runs all)"))
	key = "threads"
	PerfCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for thread-safe targets"))
	key = "keys"
	PerfCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "metrics"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save op latency histograms in Prometheus text format"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfKeySpread = viper.GetInt("keys")
	perfNumThreads = viper.GetInt("threads")
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}
	if engines := viper.GetString("engines"); engines != "" {
		perfEngines = strings.Split(engines, ",")
	}

	return nil
}

// --------------------------------------------------------------------------
// Targets
// --------------------------------------------------------------------------

// target is one map implementation under test. Thread-safe targets run
// their benchmarks with RunParallel, the rest sequentially.
type target struct {
	name       string
	threadSafe bool
	factory    func() collection.Map[string, int]
}

func targets() []target {
	newHashMap := func() collection.Map[string, int] {
		return fastmap.New[string, int](order.String(), order.Comparable[int](), nil)
	}

	return []target{
		{name: "fastmap", factory: newHashMap},
		{name: "sortedmap", factory: func() collection.Map[string, int] {
			return sortedmap.New[string, int](order.String(), order.Comparable[int](), nil)
		}},
		{name: "sharded", threadSafe: true, factory: func() collection.Map[string, int] {
			return sharded.New[string, int](order.String(), order.Comparable[int](), nil)
		}},
		{name: "atomic", threadSafe: true, factory: func() collection.Map[string, int] {
			return views.Atomic(newHashMap())
		}},
		{name: "shared", threadSafe: true, factory: func() collection.Map[string, int] {
			return views.Shared(newHashMap())
		}},
	}
}

// resultRow pairs one benchmark result with its target and operation.
type resultRow struct {
	engine string
	op     string
	result testing.BenchmarkResult
}

// --------------------------------------------------------------------------
// Command
// --------------------------------------------------------------------------

func run(_ *cobra.Command, _ []string) error {
	runID := uuid.NewString()

	fmt.Println("Performance testing tool for fastcoll engines and views")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Run ID:  %s\n", runID)
	fmt.Printf("Keys:    %d\n", perfKeySpread)
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Println()

	fmt.Println("starting tests...")

	var results []resultRow

	for _, tgt := range targets() {
		if shouldSkipEngine(tgt.name) {
			continue
		}

		fmt.Printf("\n%s:\n", tgt.name)

		for _, op := range []string{"put", "get", "remove", "iterate", "mixed"} {
			if shouldSkip(op) {
				continue
			}

			result := benchOp(tgt, op)
			results = append(results, resultRow{engine: tgt.name, op: op, result: result})
			printResult(op, result)
		}
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, runID, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	// Write latency histograms if specified
	if metricsPath := viper.GetString("metrics"); metricsPath != "" {
		fmt.Printf("\nExporting metrics to: %s\n", metricsPath)
		if err := writeMetrics(metricsPath); err != nil {
			return fmt.Errorf("failed to export metrics: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// benchOp runs one operation benchmark against a fresh instance of the
// target, recording per-op latency into a histogram along the way.
func benchOp(tgt target, op string) testing.BenchmarkResult {
	hist := metrics.GetOrCreateHistogram(
		fmt.Sprintf(`fastcoll_perf_duration_seconds{engine=%q,op=%q}`, tgt.name, op))

	return testing.Benchmark(func(b *testing.B) {
		m := tgt.factory()
		getKey := makeKeys(op)

		// get, remove, iterate and mixed need a populated map
		if op != "put" {
			for i := 0; i < perfKeySpread; i++ {
				m.Put(getKey(i), i)
			}
		}

		body := func(counter int) {
			start := time.Now()
			switch op {
			case "put":
				m.Put(getKey(counter), counter)
			case "get":
				m.Get(getKey(counter))
			case "remove":
				m.Remove(getKey(counter))
				m.Put(getKey(counter), counter)
			case "iterate":
				it := m.Iterator()
				for it.Next() {
					_ = it.Value()
				}
			case "mixed":
				switch counter % 10 {
				case 0:
					m.Remove(getKey(counter))
				case 1, 2, 3:
					m.Put(getKey(counter), counter)
				default:
					m.Get(getKey(counter))
				}
			}
			hist.UpdateDuration(start)
		}

		if tgt.threadSafe {
			b.SetParallelism(perfNumThreads)
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				counter := 0
				for pb.Next() {
					body(counter)
					counter++
				}
			})
			return
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			body(i)
		}
	})
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

func shouldSkipEngine(engine string) bool {
	// An empty selection runs every engine
	if len(perfEngines) == 0 {
		return false
	}
	for _, want := range perfEngines {
		if engine == want {
			return false
		}
	}
	return true
}

// makeKeys creates a key lookup function over the configured key spread
func makeKeys(prefix string) func(int) string {
	keys := make([]string, perfKeySpread)
	for i := 0; i < perfKeySpread; i++ {
		keys[i] = fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i)
	}

	return func(i int) string {
		if i < 0 {
			i = -i
		}
		return keys[i%perfKeySpread]
	}
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath, runID string, results []resultRow) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"RunID", "Engine", "Test", "NsPerOp", "DurationPerOp", "OpsPerSec",
		"Keys", "Threads",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Write rows
	for _, row := range results {
		nsPerOp := math.Max(float64(row.result.NsPerOp()), 1)
		opsPerSec := 1.0 / (nsPerOp / 1e9)

		record := []string{
			runID,
			row.engine,
			row.op,
			strconv.FormatInt(row.result.NsPerOp(), 10),
			time.Duration(row.result.NsPerOp()).String(),
			strconv.FormatFloat(opsPerSec, 'f', 0, 64),
			strconv.Itoa(perfKeySpread),
			strconv.Itoa(perfNumThreads),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// writeMetrics dumps all recorded histograms in Prometheus text format
func writeMetrics(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %v", err)
	}
	defer file.Close()

	metrics.WritePrometheus(file, false)
	return nil
}
