package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// scenario is one weighted ledger operation fired against the API
type scenario struct {
	Name    string
	Path    string
	Payload map[string]any
}

// result holds metrics for a single request
type result struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// stats aggregates results across all workers
type stats struct {
	Total          int
	Successful     int
	Failed         int
	TotalTime      time.Duration
	MinResponse    time.Duration
	MaxResponse    time.Duration
	TotalResponse  time.Duration
	ResponseTimes  []time.Duration
	ErrorCounts    map[string]int
	ScenarioCounts map[string]int
	Lock           sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "admin@goldenia.com", "Login email")
	password := flag.String("password", "admin123", "Login password")
	targetID := flag.Uint64("target", 2, "Target user ID for transfer scenarios")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	token, err := login(*baseURL, *email, *password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}

	scenarios := []scenario{
		{"Top-up Small", "/user/top-up", map[string]any{"amount": "10.00", "currency": "USD"}},
		{"Top-up Large", "/user/top-up", map[string]any{"amount": "100.00", "currency": "USD"}},
		{"Transfer", "/user/transfer", map[string]any{"amount": "5.00", "currency": "USD", "target_user_id": *targetID}},
		{"Exchange USD-EUR", "/user/exchange", map[string]any{"amount": "20.00", "currency_from": "USD", "currency_to": "EUR"}},
		{"Exchange EUR-USD", "/user/exchange", map[string]any{"amount": "5.00", "currency_from": "EUR", "currency_to": "USD"}},
	}

	fmt.Printf("Load testing ledger API at %s\n", *baseURL)
	fmt.Printf("Scenarios: %d, concurrency: %d, total requests: %d, delay: %d ms\n",
		len(scenarios), *concurrency, *totalRequests, *delayMs)

	st := &stats{
		Total:          *totalRequests,
		MinResponse:    time.Hour,
		ErrorCounts:    make(map[string]int),
		ScenarioCounts: make(map[string]int),
		ResponseTimes:  make([]time.Duration, 0, *totalRequests),
	}

	results := make(chan result, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, token, *delayMs, scenarios, jobs, results, st)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for r := range results {
			st.Lock.Lock()
			if r.Success {
				st.Successful++
			} else {
				st.Failed++
				msg := "unknown"
				if r.Err != nil {
					msg = r.Err.Error()
				}
				st.ErrorCounts[msg]++
			}
			st.ResponseTimes = append(st.ResponseTimes, r.ResponseTime)
			st.TotalResponse += r.ResponseTime
			if r.ResponseTime < st.MinResponse {
				st.MinResponse = r.ResponseTime
			}
			if r.ResponseTime > st.MaxResponse {
				st.MaxResponse = r.ResponseTime
			}
			st.Lock.Unlock()
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			st.Lock.Lock()
			done := st.Successful + st.Failed
			if done > 0 {
				fmt.Printf("Progress: %d/%d (%.1f%%)\n", done, st.Total,
					float64(done)/float64(st.Total)*100)
			}
			st.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()
	st.TotalTime = time.Since(start)

	printResults(st)
}

// login obtains a bearer token for the load test session
func login(baseURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login returned HTTP %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return parsed.AccessToken, nil
}

func worker(baseURL, token string, delayMs int, scenarios []scenario,
	jobs <-chan int, results chan<- result, st *stats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		sc := scenarios[rand.Intn(len(scenarios))]

		st.Lock.Lock()
		st.ScenarioCounts[sc.Name]++
		st.Lock.Unlock()

		jsonData, err := json.Marshal(sc.Payload)
		if err != nil {
			results <- result{Success: false, Err: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+sc.Path, bytes.NewReader(jsonData))
		if err != nil {
			results <- result{Success: false, Err: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		start := time.Now()
		resp, err := client.Do(req)
		elapsed := time.Since(start)

		r := result{ResponseTime: elapsed}
		if err != nil {
			r.Err = err
		} else {
			r.StatusCode = resp.StatusCode
			r.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			// Insufficient funds is an expected outcome under sustained
			// exchange load, not a server failure
			if resp.StatusCode == http.StatusBadRequest {
				r.Success = true
			}
			if !r.Success {
				r.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- r
	}
}

func printResults(st *stats) {
	tps := float64(st.Successful) / st.TotalTime.Seconds()

	var avg time.Duration
	if len(st.ResponseTimes) > 0 {
		avg = st.TotalResponse / time.Duration(len(st.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(st.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(st.ResponseTimes))
		copy(sorted, st.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", st.Total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", st.Successful,
		float64(st.Successful)/float64(st.Total)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", st.Failed,
		float64(st.Failed)/float64(st.Total)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", st.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("Minimum Response:    %v\n", st.MinResponse)
	fmt.Printf("Maximum Response:    %v\n", st.MaxResponse)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	total := 0
	for _, count := range st.ScenarioCounts {
		total += count
	}
	names := make([]string, 0, len(st.ScenarioCounts))
	for name := range st.ScenarioCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		count := st.ScenarioCounts[name]
		fmt.Printf("%-18s: %d requests (%.1f%%)\n", name, count,
			float64(count)/float64(total)*100)
	}

	if st.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range st.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", strings.TrimSpace(msg), count,
				float64(count)/float64(st.Total)*100)
		}
	}
	fmt.Println("================================================")
}
