//go:build !(js && wasm)

package fetch

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

func Get(url string) io.Reader {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("[err] get failed: %s", err)
		return bytes.NewReader(nil)
	}

	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	return bytes.NewReader(body)
}

func Post(url, contentType string, body io.Reader) io.Reader {
	resp, err := http.Post(url, contentType, body)
	if err != nil {
		fmt.Printf("[err] post failed: %s", err)
		return bytes.NewReader(nil)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(resp.Body)
	return bytes.NewReader(respBody)
}
