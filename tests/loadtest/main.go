package main

import (
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8080"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numDates     = 14
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

// dates is a small rolling window so most requests hit the response
// cache and only a handful force a resolve against the upstream.
var dates = buildDates()

func buildDates() []string {
	out := make([]string, numDates)
	day := time.Now()
	for i := range out {
		out[i] = day.Format("2006-01-02")
		day = day.AddDate(0, 0, 1)
	}
	return out
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== Schultafel Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Dates: %d\n\n", numWorkers, testDuration, numDates)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Warm the grid cache so phase 2 measures cached latency, not
	// upstream fetch latency.
	fmt.Println("\n--- Phase 1: Warmup (GET /timetable per date) ---")
	for _, d := range dates {
		resp, err := httpClient.Get(baseURL + "/timetable?date=" + d)
		if err != nil {
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
	fmt.Println("done")

	// Kiosk-shaped load: mostly /current polls with a spread of dated
	// lookups and health probes mixed in.
	fmt.Println("\n--- Phase 2: Kiosk load (70% current, 25% dated, 5% health) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.70:
			return doGetCurrent()
		case r < 0.95:
			return doGetTimetable(rng)
		default:
			return doGetHealth()
		}
	})

	// All-dated load hammers the response cache.
	fmt.Println("\n--- Phase 3: Dated load (100% GET /timetable?date=) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doGetTimetable(rng)
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGetCurrent() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/current")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /current", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	// 404 before the first refresh lands is expected, not an error.
	ok := resp.StatusCode == 200 || resp.StatusCode == 404
	return result{"GET /current", resp.StatusCode, lat, !ok}
}

func doGetTimetable(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/timetable?date=%s", baseURL, dates[rng.Intn(len(dates))])
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /timetable", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /timetable", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetHealth() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/health")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /health", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /health", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
