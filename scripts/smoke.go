// One-off: go run scripts/smoke.go [base-url]
// Walks register -> create -> done -> delete -> list against a running server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

func main() {
	base := "http://localhost:8080"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}
	username := "smoke-" + uuid.NewString()[:8]
	client := &http.Client{Timeout: 5 * time.Second}

	call := func(method, path string, body any, want int) map[string]any {
		var buf io.Reader
		if body != nil {
			b, err := json.Marshal(body)
			if err != nil {
				panic(err)
			}
			buf = bytes.NewReader(b)
		}
		req, err := http.NewRequest(method, base+path, buf)
		if err != nil {
			panic(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("username", username)
		resp, err := client.Do(req)
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != want {
			panic(fmt.Sprintf("%s %s: got %d want %d: %s", method, path, resp.StatusCode, want, raw))
		}
		fmt.Printf("%s %s -> %d %s\n", method, path, resp.StatusCode, raw)
		out := map[string]any{}
		_ = json.Unmarshal(raw, &out)
		return out
	}

	call(http.MethodPost, "/users", map[string]string{"name": "Smoke", "username": username}, http.StatusCreated)
	todo := call(http.MethodPost, "/todos", map[string]string{"title": "Task", "deadline": "2030-01-01"}, http.StatusCreated)
	id, _ := todo["id"].(string)
	call(http.MethodPatch, "/todos/"+id+"/done", nil, http.StatusOK)
	call(http.MethodDelete, "/todos/"+id, nil, http.StatusNoContent)
	call(http.MethodGet, "/todos", nil, http.StatusOK)
}
