package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ApiMock stands in for an outbound HTTP API, such as the Resend email endpoint.
// It records every request and replies with the configured status and body.
type ApiMock struct {
	mu                    sync.Mutex
	headersReceived       map[string]map[int]map[string]string
	requestsReceived      map[string]map[int]map[string]any
	responseMap           map[string]map[int]any
	defaultResponseMap    map[string]map[int]any
	responseStatus        map[string]map[int]int
	defaultResponseStatus map[string]map[int]int
	server                *httptest.Server
	mockUrl               string
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		headersReceived:       map[string]map[int]map[string]string{},
		requestsReceived:      map[string]map[int]map[string]any{},
		responseMap:           map[string]map[int]any{},
		defaultResponseMap:    map[string]map[int]any{},
		responseStatus:        map[string]map[int]int{},
		defaultResponseStatus: map[string]map[int]int{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				var request map[string]any
				_ = json.Unmarshal(body, &request)
				if request == nil {
					request = map[string]any{}
				}

				a.mu.Lock()
				key := r.Method + r.URL.Path
				index := len(a.requestsReceived[key])

				if a.requestsReceived[key] == nil {
					a.requestsReceived[key] = map[int]map[string]any{}
				}
				a.requestsReceived[key][index] = request

				if a.headersReceived[key] == nil {
					a.headersReceived[key] = map[int]map[string]string{}
				}
				a.headersReceived[key][index] = map[string]string{}
				for name, value := range r.Header {
					a.headersReceived[key][index][name] = value[0]
				}

				status := a.getResponseStatus(r.Method, r.URL.Path, index)
				payload := a.createBaseResponse(index, r.Method, r.URL.Path)
				a.mu.Unlock()

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write(payload)
			},
		),
	)

	a.mockUrl = a.server.URL
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.mockUrl
}

// SetResponse configures the reply to the index-th call of method+path.
// An index of -1 sets the default reply for every call.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if a.responseMap[key] == nil {
		a.responseMap[key] = map[int]any{}
	}
	if a.responseStatus[key] == nil {
		a.responseStatus[key] = map[int]int{}
	}
	if a.defaultResponseMap[key] == nil {
		a.defaultResponseMap[key] = map[int]any{}
	}
	if a.defaultResponseStatus[key] == nil {
		a.defaultResponseStatus[key] = map[int]int{}
	}
	if index == -1 {
		a.defaultResponseStatus[key][0] = status
		a.defaultResponseMap[key][0] = response
	} else {
		a.responseMap[key][index] = response
		a.responseStatus[key][index] = status
	}
}

// RequestCount returns how many calls method+path has received.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := a.findMatchingKeyGeneric(a.getMapKeys(a.requestsReceived), method, path, true)
	if key == "" {
		return 0
	}
	return len(a.requestsReceived[key])
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := a.findMatchingKeyGeneric(a.getMapKeys(a.requestsReceived), method, path, true)
	if key != "" && a.requestsReceived[key] != nil {
		if request, exists := a.requestsReceived[key][index]; exists {
			return request
		}
	}
	return nil
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := a.findMatchingKeyGeneric(a.getMapKeys(a.headersReceived), method, path, true)
	if key != "" && a.headersReceived[key] != nil {
		if headers, exists := a.headersReceived[key][index]; exists {
			return headers
		}
	}
	return nil
}

// ClearResponses forgets recorded calls and configured replies for method+path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := method + path
	for _, m := range []map[string]map[int]any{a.responseMap, a.defaultResponseMap} {
		for key := range m {
			if strings.HasPrefix(key, prefix) {
				delete(m, key)
			}
		}
	}
	for _, m := range []map[string]map[int]int{a.responseStatus, a.defaultResponseStatus} {
		for key := range m {
			if strings.HasPrefix(key, prefix) {
				delete(m, key)
			}
		}
	}
	for key := range a.headersReceived {
		if strings.HasPrefix(key, prefix) {
			delete(a.headersReceived, key)
		}
	}
	for key := range a.requestsReceived {
		if strings.HasPrefix(key, prefix) {
			delete(a.requestsReceived, key)
		}
	}
}

func (a *ApiMock) createBaseResponse(index int, method, path string) []byte {
	responseBytes, _ := json.Marshal(a.getResponseBody(method, path, index))
	return responseBytes
}

func (a *ApiMock) getResponseBody(method string, path string, index int) any {
	key := a.findMatchingKeyGeneric(a.getMapKeys(a.responseMap), method, path)
	if key != "" && a.responseMap[key] != nil {
		if response, exists := a.responseMap[key][index]; exists && response != nil {
			return response
		}
	}

	defaultKey := a.findMatchingKeyGeneric(a.getMapKeys(a.defaultResponseMap), method, path)
	if defaultKey != "" && a.defaultResponseMap[defaultKey] != nil {
		if response, exists := a.defaultResponseMap[defaultKey][0]; exists && response != nil {
			return response
		}
	}

	return map[string]any{}
}

func (a *ApiMock) getResponseStatus(method string, path string, index int) int {
	key := a.findMatchingKeyGeneric(a.getMapKeys(a.responseStatus), method, path)
	if key != "" && a.responseStatus[key] != nil {
		if status, exists := a.responseStatus[key][index]; exists && status != 0 {
			return status
		}
	}

	defaultKey := a.findMatchingKeyGeneric(a.getMapKeys(a.defaultResponseStatus), method, path)
	if defaultKey != "" && a.defaultResponseStatus[defaultKey] != nil {
		if status, exists := a.defaultResponseStatus[defaultKey][0]; exists && status != 0 {
			return status
		}
	}

	// WriteHeader(0) panics
	return http.StatusOK
}

func (a *ApiMock) matchPath(pattern string, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && pathParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}

func (a *ApiMock) findMatchingKeyGeneric(keys []string, method string, path string, strict ...bool) string {
	isStrict := len(strict) > 0 && strict[0]

	exactKey := method + path
	for _, key := range keys {
		if key == exactKey && (!isStrict || !strings.Contains(key, "*")) {
			return key
		}
	}

	for _, key := range keys {
		if isStrict && strings.Contains(key, "*") {
			continue
		}
		if strings.HasPrefix(key, method) {
			if a.matchPath(strings.TrimPrefix(key, method), path) {
				return key
			}
		}
	}

	return ""
}

func (a *ApiMock) getMapKeys(m any) []string {
	var keys []string
	switch v := m.(type) {
	case map[string]map[int]map[string]any:
		for key := range v {
			keys = append(keys, key)
		}
	case map[string]map[int]map[string]string:
		for key := range v {
			keys = append(keys, key)
		}
	case map[string]map[int]any:
		for key := range v {
			keys = append(keys, key)
		}
	case map[string]map[int]int:
		for key := range v {
			keys = append(keys, key)
		}
	}
	return keys
}
