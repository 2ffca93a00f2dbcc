package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

const sessionJSON = `{
  "name": "colors",
  "mask_ms": 250,
  "trials": [
    {"prompt": "Which one is a color?", "choices": ["red", "loud"], "answer": "red"},
    {"prompt": "Which one is not?", "choices": ["blue", "late", "green"], "answer": "late"}
  ]
}`

func TestLoadSession(t *testing.T) {
	def, err := LoadSession(strings.NewReader(sessionJSON))
	if err != nil {
		t.Fatalf("LoadSession failed: %s", err)
	}

	if def.Name != "colors" {
		t.Errorf("name = %q, want %q", def.Name, "colors")
	}

	if def.MaskMs != 250 {
		t.Errorf("mask_ms = %d, want 250", def.MaskMs)
	}

	if len(def.Trials) != 2 {
		t.Fatalf("got %d trials, want 2", len(def.Trials))
	}

	if def.Trials[1].Answer != "late" {
		t.Errorf("trial 1 answer = %q, want %q", def.Trials[1].Answer, "late")
	}
}

func TestLoadSessionKeepsRawBytes(t *testing.T) {
	def, err := LoadSession(strings.NewReader(sessionJSON))
	if err != nil {
		t.Fatalf("LoadSession failed: %s", err)
	}

	if !bytes.Equal(def.Raw, []byte(sessionJSON)) {
		t.Errorf("raw bytes do not match the source")
	}
}

func TestLoadSessionDefaultMask(t *testing.T) {
	src := `{"name": "x", "trials": [{"prompt": "p", "choices": ["a"], "answer": "a"}]}`

	def, err := LoadSession(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadSession failed: %s", err)
	}

	if def.MaskMs != 500 {
		t.Errorf("mask_ms = %d, want the 500 default", def.MaskMs)
	}
}

func TestLoadSessionValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "garbage", src: "not json"},
		{name: "no trials", src: `{"name": "x", "trials": []}`},
		{name: "no choices", src: `{"name": "x", "trials": [{"prompt": "p", "choices": [], "answer": "a"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadSession(strings.NewReader(tc.src)); err == nil {
				t.Errorf("expected an error for %q", tc.src)
			}
		})
	}
}

func TestTrialOrder(t *testing.T) {
	def, err := LoadSession(strings.NewReader(sessionJSON))
	if err != nil {
		t.Fatalf("LoadSession failed: %s", err)
	}

	first := def.TrialOrder(RandWithSeed(7))
	second := def.TrialOrder(RandWithSeed(7))

	if !slices.Equal(first, second) {
		t.Errorf("same seed produced different orders: %v vs %v", first, second)
	}

	// the order must be a permutation of all trial indices
	sorted := slices.Clone(first)
	slices.Sort(sorted)

	if !slices.Equal(sorted, []int{0, 1}) {
		t.Errorf("order %v is not a permutation of the trials", first)
	}
}

func TestResultsCSV(t *testing.T) {
	results := Results{
		Session: "colors",
		Trials: []TrialResult{
			{Trial: 1, Prompt: "Which one is a color?", Response: "red", Correct: true, RT: 812_000_000, Clicks: 1},
		},
	}

	lines := strings.Split(strings.TrimSpace(string(results.CSV())), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d csv lines, want 2", len(lines))
	}

	if lines[0] != "trial,prompt,response,correct,rt_ms,clicks" {
		t.Errorf("unexpected header %q", lines[0])
	}

	if lines[1] != "1,Which one is a color?,red,true,812,1" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestShuffledLeavesInputAlone(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	_ = Shuffled(RandWithSeed(1), input)

	if !slices.Equal(input, []int{1, 2, 3, 4, 5}) {
		t.Errorf("input was modified: %v", input)
	}
}
