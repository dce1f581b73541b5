package fitbit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"vita/internal/shared/constants"
	"vita/internal/shared/logger"
)

// DomainState classifies one domain fetch.
type DomainState string

const (
	DomainOK     DomainState = "ok"
	DomainEmpty  DomainState = "empty"
	DomainFailed DomainState = "failed"
)

// DomainResult is the outcome of fetching one data domain for one date.
// Transport errors, non-2xx statuses, and unreadable bodies are
// indistinguishable here; all map to failed.
type DomainResult struct {
	State   DomainState
	Payload []byte
	Err     error
}

// DayResult is a fixed record of the four per-domain results for one date.
type DayResult struct {
	Activity DomainResult
	Weight   DomainResult
	Food     DomainResult
	Sleep    DomainResult
}

// Failed reports how many of the four domains failed.
func (r *DayResult) Failed() int {
	n := 0
	for _, d := range []DomainResult{r.Activity, r.Weight, r.Food, r.Sleep} {
		if d.State == DomainFailed {
			n++
		}
	}
	return n
}

// Gateway reads the four daily data domains from the provider.
type Gateway struct {
	http    *http.Client
	baseURL string
	logger  logger.Interface
}

func NewGateway(log logger.Interface) *Gateway {
	return &Gateway{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: apiBase,
		logger:  log.With("component", "fitbit.gateway"),
	}
}

// FetchDay issues the four domain GETs for date concurrently and waits
// for all of them. Each fetch is isolated; a slow or failing endpoint
// never blocks or cancels its siblings, and FetchDay itself returns no
// error.
func (g *Gateway) FetchDay(ctx context.Context, accessToken string, date time.Time) *DayResult {
	day := date.Format("2006-01-02")

	urls := map[string]string{
		constants.DomainActivity: fmt.Sprintf("%s/1/user/-/activities/date/%s.json", g.baseURL, day),
		constants.DomainWeight:   fmt.Sprintf("%s/1/user/-/body/log/weight/date/%s.json", g.baseURL, day),
		constants.DomainFood:     fmt.Sprintf("%s/1/user/-/foods/log/date/%s.json", g.baseURL, day),
		constants.DomainSleep:    fmt.Sprintf("%s/1.2/user/-/sleep/date/%s.json", g.baseURL, day),
	}

	results := make(map[string]DomainResult, len(urls))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for domain, url := range urls {
		wg.Add(1)
		go func(domain, url string) {
			defer wg.Done()
			result := g.fetch(ctx, accessToken, url)
			if result.State == DomainFailed {
				g.logger.Warnw("domain fetch failed",
					"domain", domain,
					"date", day,
					"error", result.Err)
			}
			mu.Lock()
			results[domain] = result
			mu.Unlock()
		}(domain, url)
	}
	wg.Wait()

	return &DayResult{
		Activity: results[constants.DomainActivity],
		Weight:   results[constants.DomainWeight],
		Food:     results[constants.DomainFood],
		Sleep:    results[constants.DomainSleep],
	}
}

func (g *Gateway) fetch(ctx context.Context, accessToken, url string) DomainResult {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return DomainResult{State: DomainFailed, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.http.Do(req)
	if err != nil {
		return DomainResult{State: DomainFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return DomainResult{State: DomainEmpty}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return DomainResult{State: DomainFailed, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DomainResult{State: DomainFailed, Err: err}
	}
	if len(body) == 0 {
		return DomainResult{State: DomainEmpty}
	}

	return DomainResult{State: DomainOK, Payload: body}
}
