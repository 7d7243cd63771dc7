package steps

import (
	"fmt"

	"github.com/cucumber/godog"
)

func registerEmailSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the email API responds to "([^"]*)" "([^"]*)" with status (\d+)$`, t.theEmailAPIRespondsWithStatus)

	ctx.Step(`^the email API should have received (\d+) requests? to "([^"]*)" "([^"]*)"$`, t.theEmailAPIShouldHaveReceived)
	ctx.Step(`^the email API request (\d+) to "([^"]*)" "([^"]*)" should have field "([^"]*)" equal to "([^"]*)"$`, t.theEmailAPIRequestShouldHaveField)
	ctx.Step(`^the email API request (\d+) to "([^"]*)" "([^"]*)" should be authorized$`, t.theEmailAPIRequestShouldBeAuthorized)
}

func (t *testContext) theEmailAPIRespondsWithStatus(method, path string, status int) error {
	t.app.emailAPI.SetResponse(-1, method, path, status, map[string]any{
		"statusCode": status,
		"name":       "internal_server_error",
		"message":    "mocked failure",
	})
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceived(count int, method, path string) error {
	if got := t.app.emailAPI.RequestCount(method, path); got != count {
		return fmt.Errorf("expected %d requests to %s %s, got %d", count, method, path, got)
	}
	return nil
}

// Requests are numbered from 1 in feature files.
func (t *testContext) theEmailAPIRequestShouldHaveField(index int, method, path, field, expected string) error {
	body := t.app.emailAPI.GetRequestBody(method, path, index-1)
	if body == nil {
		return fmt.Errorf("request %d to %s %s was not received", index, method, path)
	}
	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in request body: %v", field, body)
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("request field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theEmailAPIRequestShouldBeAuthorized(index int, method, path string) error {
	headers := t.app.emailAPI.GetRequestHeaders(method, path, index-1)
	if headers == nil {
		return fmt.Errorf("request %d to %s %s was not received", index, method, path)
	}
	if got := headers["Authorization"]; got != "Bearer "+emailAPIKey {
		return fmt.Errorf("unexpected Authorization header %q", got)
	}
	return nil
}
