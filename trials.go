package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/neilotoole/streamcache"
)

type Trial struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer"`
}

type SessionDef struct {
	Name   string  `json:"name"`
	MaskMs int     `json:"mask_ms"`
	Trials []Trial `json:"trials"`

	// Raw keeps the bytes the session was parsed from, for the
	// results archive.
	Raw []byte `json:"-"`
}

// LoadSession decodes a session definition while keeping the raw bytes.
// The source is read only once, the cache fans it out to the JSON decoder
// and to the archive reader.
func LoadSession(src io.Reader) (SessionDef, error) {
	cache := streamcache.New(src)

	decodeRdr := cache.NewReader(context.Background())
	archiveRdr := cache.NewReader(context.Background())
	cache.Seal()

	var def SessionDef
	if err := json.NewDecoder(decodeRdr).Decode(&def); err != nil {
		return SessionDef{}, fmt.Errorf("decoding session definition: %w", err)
	}

	raw, err := io.ReadAll(archiveRdr)
	if err != nil {
		return SessionDef{}, fmt.Errorf("archiving session definition: %w", err)
	}

	def.Raw = raw

	if len(def.Trials) == 0 {
		return SessionDef{}, fmt.Errorf("session %q contains no trials", def.Name)
	}

	for idx, trial := range def.Trials {
		if len(trial.Choices) == 0 {
			return SessionDef{}, fmt.Errorf("trial %d of session %q has no choices", idx, def.Name)
		}
	}

	if def.MaskMs <= 0 {
		def.MaskMs = 500
	}

	return def, nil
}

// TrialOrder returns a shuffled presentation order of trial indices.
func (def *SessionDef) TrialOrder(rng *rand.Rand) []int {
	order := make([]int, len(def.Trials))
	for idx := range order {
		order[idx] = idx
	}

	return Shuffled(rng, order)
}
