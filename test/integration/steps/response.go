package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

// lookupField walks a dot-separated path through the parsed response body.
// Numeric segments index into arrays, so "categories.0.sum" reaches the sum
// of the first category entry.
func lookupField(body []byte, path string) (interface{}, error) {
	var current interface{}
	if err := json.Unmarshal(body, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(body))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("field %q: %q is not an array index", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: index %d out of range (%d items)", path, index, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: cannot descend into %T", path, current)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s",
			path, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBeNull(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field %q expected null, got %v", path, value)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, path)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not an array", path)
	}
	if len(items) != expected {
		return fmt.Errorf("field %q expected %d items, got %d. Body: %s",
			path, expected, len(items), string(tc.responseBody))
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual interface{}
	if err := json.Unmarshal([]byte(body.Content), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}
	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)
	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}
	return nil
}
