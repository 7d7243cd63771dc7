package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

const defaultPassword = "Secret123"

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

func registerAPISteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Step(`^today is "([^"]*)"$`, t.todayIs)
	ctx.Step(`^(\d+) hours pass in the session store$`, t.hoursPassInTheSessionStore)
	ctx.Step(`^I am logged in as "([^"]*)"$`, t.iAmLoggedInAs)
	ctx.Step(`^the header is empty$`, t.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)

	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, t.iSaveTheResponseFieldAs)
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.app.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.app.clock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) hoursPassInTheSessionStore(hours int) error {
	t.app.redis.FastForward(time.Duration(hours) * time.Hour)
	return nil
}

// iAmLoggedInAs registers the user through the API and keeps the issued session token.
func (t *testContext) iAmLoggedInAs(email string) error {
	payload, err := json.Marshal(map[string]any{
		"fullName": "Test User",
		"email":    email,
		"password": defaultPassword,
		"sex":      "other",
		"age":      30,
	})
	if err != nil {
		return err
	}

	t.token = ""
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("registration of %s failed with %d: %v", email, t.response.status, t.response.body)
	}

	token, ok := getFieldValue(t.response.body, "data.token").(string)
	if !ok || token == "" {
		return fmt.Errorf("registration response carries no token: %v", t.response.body)
	}
	t.token = token

	idStr, _ := getFieldValue(t.response.body, "data.user.id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("registration response carries no user id: %v", t.response.body)
	}
	t.currentUserID = userID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.token = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

// replacePlaceholders substitutes {{name}} with saved values. Unknown names are left untouched.
func (t *testContext) replacePlaceholders(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		switch name {
		case "token":
			return t.token
		case "user_id":
			return t.currentUserID.String()
		}
		if value, ok := t.vars[name]; ok {
			return value
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.app.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}
	return nil
}
