package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/probelab/stimbox/fetch"
)

const resultsEndpoint = "https://results.probelab.dev/sessions"

type TrialResult struct {
	Trial    int           `json:"trial"`
	Prompt   string        `json:"prompt"`
	Response string        `json:"response"`
	Correct  bool          `json:"correct"`
	RT       time.Duration `json:"rt_ns"`
	Clicks   int           `json:"clicks"`
}

type Results struct {
	Participant string        `json:"participant"`
	Session     string        `json:"session"`
	Seed        uint64        `json:"seed"`
	Trials      []TrialResult `json:"trials"`
}

func (r *Results) CorrectCount() int {
	var count int
	for _, trial := range r.Trials {
		if trial.Correct {
			count++
		}
	}

	return count
}

func (r *Results) MeanRT() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}

	var sum time.Duration
	for _, trial := range r.Trials {
		sum += trial.RT
	}

	return sum / time.Duration(len(r.Trials))
}

// CSV renders the trial results as a csv table.
func (r *Results) CSV() []byte {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"trial", "prompt", "response", "correct", "rt_ms", "clicks"})

	for _, trial := range r.Trials {
		_ = w.Write([]string{
			strconv.Itoa(trial.Trial),
			trial.Prompt,
			trial.Response,
			strconv.FormatBool(trial.Correct),
			strconv.FormatInt(trial.RT.Milliseconds(), 10),
			strconv.Itoa(trial.Clicks),
		})
	}

	w.Flush()
	return buf.Bytes()
}

type resultsUpload struct {
	Results
	Definition json.RawMessage `json:"definition"`
}

// ReportResults posts the results together with the session definition
// they were collected under.
func ReportResults(results *Results, rawDef []byte) Promise[string, struct{}] {
	payload, err := json.Marshal(resultsUpload{
		Results:    *results,
		Definition: rawDef,
	})

	uri := resultsEndpoint + "/" + results.Session

	return AsyncTask(func(yield func(struct{})) string {
		if err != nil {
			return fmt.Sprintf("encoding results failed: %s", err)
		}

		resp, err := io.ReadAll(fetch.Post(uri, "application/json", bytes.NewReader(payload)))
		if err != nil || len(resp) == 0 {
			return "results upload failed"
		}

		return "results uploaded"
	})
}
