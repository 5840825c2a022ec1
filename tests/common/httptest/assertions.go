//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse accepts both error shapes the API produces:
// {"error": "..."} from auth endpoints and
// {"success": false, "message": "..."} from waitlist endpoints.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if msg, ok := body["error"].(string); ok {
		assert.Contains(t, msg, expectedErrorMsg, "Response error message doesn't contain expected text")
		return
	}
	if msg, ok := body["message"].(string); ok {
		assert.Contains(t, msg, expectedErrorMsg, "Response message doesn't contain expected text")
		return
	}
	t.Errorf("No error message found in response: %s", w.Body.String())
}

// EnvelopeBody is the decoded {success, message, data} wrapper.
type EnvelopeBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) EnvelopeBody {
	t.Helper()

	var env EnvelopeBody
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode envelope JSON: %s", w.Body.String()))
	return env
}
