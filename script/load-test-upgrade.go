package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// User mirrors the API user payload
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Password  string `json:"password,omitempty"`
	Level     string `json:"level,omitempty"`
	Login     int    `json:"login"`
	Recommend int    `json:"recommend"`
	Email     string `json:"email,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	StatusCounts       map[int]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the workers send
type Scenario struct {
	Name   string
	Weight int
	Run    func(client *http.Client, baseURL, userID string) (int, error)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	users := flag.Int("u", 20, "Number of users to seed before the run")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Seeding %d users at %s\n", *users, *baseURL)
	userIDs, err := seedUsers(client, *baseURL, *users)
	if err != nil {
		fmt.Printf("Seeding failed: %v\n", err)
		return
	}

	scenarios := []Scenario{
		{Name: "login", Weight: 5, Run: bumpCounter(func(u *User) { u.Login++ })},
		{Name: "recommend", Weight: 3, Run: bumpCounter(func(u *User) { u.Recommend++ })},
		{Name: "get", Weight: 3, Run: getUser},
		{Name: "upgrade-levels", Weight: 1, Run: upgradeLevels},
	}

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
		StatusCounts:  make(map[int]int),
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			stats.StatusCounts[result.StatusCode]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	// A last run settles every pending promotion, after which nobody may
	// still be eligible
	if _, err := upgradeLevels(client, *baseURL, ""); err != nil {
		fmt.Printf("Final upgrade run failed: %v\n", err)
		return
	}
	checkLevels(client, *baseURL)
}

func pick(scenarios []Scenario) Scenario {
	total := 0
	for _, s := range scenarios {
		total += s.Weight
	}
	n := rand.Intn(total)
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[0]
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := pick(scenarios)
		userID := userIDs[rand.Intn(len(userIDs))]

		start := time.Now()
		status, err := scenario.Run(client, baseURL, userID)
		results <- TestResult{
			Scenario:     scenario.Name,
			Success:      err == nil,
			ResponseTime: time.Since(start),
			StatusCode:   status,
			Error:        err,
		}
	}
}

func doJSON(client *http.Client, method, url string, body, out any) (int, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, url, &payload)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func seedUsers(client *http.Client, baseURL string, n int) ([]string, error) {
	if _, err := doJSON(client, http.MethodDelete, baseURL+"/users", nil, nil); err != nil {
		return nil, err
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		user := User{
			ID:    fmt.Sprintf("load-%03d", i),
			Name:  fmt.Sprintf("load user %d", i),
			Email: fmt.Sprintf("load%d@example.com", i),
		}
		if _, err := doJSON(client, http.MethodPost, baseURL+"/users", user, nil); err != nil {
			return nil, err
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// bumpCounter reads a user, applies change and writes it back. Lost updates
// between concurrent writers are expected and only affect the counters. A
// promotion landing between the read and the write is answered with 422.
func bumpCounter(change func(*User)) func(*http.Client, string, string) (int, error) {
	return func(client *http.Client, baseURL, userID string) (int, error) {
		var user User
		if status, err := doJSON(client, http.MethodGet, baseURL+"/users/"+userID, nil, &user); err != nil {
			return status, err
		}
		change(&user)
		user.ID = ""
		return doJSON(client, http.MethodPut, baseURL+"/users/"+userID, user, nil)
	}
}

func getUser(client *http.Client, baseURL, userID string) (int, error) {
	return doJSON(client, http.MethodGet, baseURL+"/users/"+userID, nil, nil)
}

func upgradeLevels(client *http.Client, baseURL, _ string) (int, error) {
	return doJSON(client, http.MethodPost, baseURL+"/users/upgrade-levels", nil, nil)
}

// checkLevels reports users whose counters still qualify them for a level
// above the one stored, using the default thresholds
func checkLevels(client *http.Client, baseURL string) {
	var users []User
	if _, err := doJSON(client, http.MethodGet, baseURL+"/users", nil, &users); err != nil {
		fmt.Printf("Listing users failed: %v\n", err)
		return
	}

	pending := 0
	for _, u := range users {
		if (u.Level == "BASIC" && u.Login >= 50) || (u.Level == "SILVER" && u.Recommend >= 30) {
			pending++
			fmt.Printf("User %s is still eligible: level=%s login=%d recommend=%d\n", u.ID, u.Level, u.Login, u.Recommend)
		}
	}

	fmt.Println("\n================= LEVEL CHECK =================")
	if pending == 0 {
		fmt.Printf("All %d users are at their earned level\n", len(users))
	} else {
		fmt.Printf("%d of %d users were left behind\n", pending, len(users))
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))
	if len(sorted) > 0 {
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for status, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", status, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
