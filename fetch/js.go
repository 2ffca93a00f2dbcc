//go:build js && wasm

package fetch

import (
	"io"
	"syscall/js"
)

var fn js.Value

func init() {
	fn = js.Global().Call("eval", `
		async (url, method, contentType, body, write) => {
			const opts = { method: method };
			if (body !== null) {
				opts.body = body;
				opts.headers = { "content-type": contentType };
			}

			const resp = await fetch(url, opts);

			for await (const chunk of resp.body) {
				write(chunk);
			}

			write(null);
		}
	`)
}

func Get(url string) io.Reader {
	return request(url, "GET", "", nil)
}

func Post(url, contentType string, body io.Reader) io.Reader {
	buf, _ := io.ReadAll(body)
	return request(url, "POST", contentType, buf)
}

func request(url, method, contentType string, body []byte) io.Reader {
	// chunks received and ready for send out
	chunks := make(chan []byte, 16)

	receive := js.FuncOf(func(this js.Value, args []js.Value) any {
		chunk := args[0]
		if chunk.IsNull() {
			close(chunks)
			return nil
		}

		buf := make([]byte, chunk.Get("length").Int())
		js.CopyBytesToGo(buf, chunk)
		chunks <- buf

		return nil
	})

	jsBody := js.Null()
	if body != nil {
		array := js.Global().Get("Uint8Array").New(len(body))
		js.CopyBytesToJS(array, body)
		jsBody = array
	}

	go fn.Invoke(url, method, contentType, jsBody, receive)

	read, write := io.Pipe()

	go func() {
		defer func() { receive.Release() }()
		defer func() { _ = write.Close() }()

		for chunk := range chunks {
			if _, err := write.Write(chunk); err != nil {
				return
			}
		}
	}()

	return read
}
