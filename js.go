//go:build js && wasm

package main

import (
	"bytes"
	"io"
	"net/url"
	"strings"
	"syscall/js"

	"github.com/probelab/stimbox/fetch"
)

var Debug = false

func ProfileStart() func() {
	return func() {}
}

func ParticipantName() string {
	if name := queryValues().Get("participant"); name != "" {
		return name
	}

	return "anonymous"
}

// sessionSource returns the session definition to run, either the url from
// the "session" query parameter or the embedded default.
func sessionSource() io.Reader {
	if uri := queryValues().Get("session"); uri != "" {
		return fetch.Get(uri)
	}

	return bytes.NewReader(defaultSessionJSON)
}

func SaveResultsLocal(results *Results) {
	// in the browser the upload is the only persistence
}

func queryValues() url.Values {
	search := js.Global().Get("location").Get("search").String()

	values, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return url.Values{}
	}

	return values
}
