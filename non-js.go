//go:build !(js && wasm)

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
)

var Debug = true

// ProfileStart enables cpu profiling if STIMBOX_PROFILE is set.
func ProfileStart() func() {
	if os.Getenv("STIMBOX_PROFILE") == "" {
		return func() {}
	}

	return profile.Start(profile.CPUProfile).Stop
}

func ParticipantName() string {
	if name := os.Getenv("STIMBOX_PARTICIPANT"); name != "" {
		return name
	}

	return "anonymous"
}

// sessionSource returns the session definition to run, either a file given
// on the command line or the embedded default.
func sessionSource() io.Reader {
	if len(os.Args) > 1 {
		fp, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("opening session file: %s", err)
		}

		return fp
	}

	return bytes.NewReader(defaultSessionJSON)
}

func SaveResultsLocal(results *Results) {
	name := fmt.Sprintf("results-%s-%d.csv", results.Session, time.Now().Unix())

	if err := os.WriteFile(name, results.CSV(), 0o644); err != nil {
		log.Printf("[err] writing %q failed: %s", name, err)
		return
	}

	log.Printf("results written to %q", name)
}
