// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/config"
	"github.com/finance-tracker/paycycle/internal/infra/dependency"
	"github.com/finance-tracker/paycycle/internal/integration/adapters"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/validator"
	"github.com/finance-tracker/paycycle/internal/integration/persistence"
	"github.com/finance-tracker/paycycle/internal/integration/persistence/model"
	"github.com/finance-tracker/paycycle/test/integration/mock"
)

// storageEnv selects the backend the scenarios run against: memory, redis or database.
const storageEnv = "INTEGRATION_STORAGE"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values captured from earlier responses, referenced as {name}
	variables map[string]string

	// Config
	cfg   *config.Config
	clock *mock.Time
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
		validator.Register()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Storage.Backend = getStorageBackend()
		cfg.Budget.Timezone = "UTC"
		cfg.Budget.SavingsCategoryID = "savings"
		cfg.Budget.CategoryFile = ""
		cfg.RateLimit.MaxRequests = 0

		clock := mock.NewTime()
		clock.SetCurrentTime(time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC))
		clock.Freeze()

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			variables:      make(map[string]string),
			cfg:            cfg,
			clock:          clock,
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSetupSteps registers steps that configure the scenario before the server starts.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^writes are limited to (\d+) requests per minute$`, writesAreLimitedTo)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am user "([^"]*)"$`, iAmUser)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

func getStorageBackend() string {
	if backend := os.Getenv(storageEnv); backend != "" {
		return strings.ToLower(backend)
	}
	return config.StorageMemory
}

// newStorage builds the scenario store on the in-process mocks and clears previous state.
func newStorage(cfg *config.Config) (*dependency.Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client := mock.NewRedis()
		if err := mock.ClearRedis(client); err != nil {
			return nil, err
		}
		return &dependency.Storage{
			Backend: config.StorageRedis,
			Store:   persistence.NewRedisStore(client, cfg.Redis.KeyPrefix),
			Locker: adapters.NewRedisUserLocker(
				client,
				cfg.Redis.KeyPrefix+"lock:",
				cfg.Storage.LockTTL,
				cfg.Storage.LockWait,
			),
			HealthCheck: func(ctx context.Context) bool {
				return client.Ping(ctx).Err() == nil
			},
			Close: func() error { return nil },
		}, nil

	case config.StorageDatabase:
		database := mock.NewDb(&model.KeyValueModel{})
		if err := database.ClearDB(); err != nil {
			return nil, err
		}
		return &dependency.Storage{
			Backend:     config.StorageDatabase,
			Store:       persistence.NewDatabaseStore(database.DbConn),
			Locker:      adapters.NewLocalUserLocker(cfg.Storage.LockWait),
			HealthCheck: func(context.Context) bool { return true },
			Close:       func() error { return nil },
		}, nil

	default:
		return dependency.NewStorage(context.Background(), cfg)
	}
}

// ensureServer starts the API on the first request so setup steps can adjust config first.
func (tc *TestContext) ensureServer() error {
	if tc.server != nil {
		return nil
	}

	storage, err := newStorage(tc.cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	injector, err := dependency.NewInjector(tc.cfg, storage, tc.clock)
	if err != nil {
		return fmt.Errorf("failed to create injector: %w", err)
	}

	tc.engine = injector.Router.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return nil
}

// expand replaces {name} placeholders with captured variables.
func (tc *TestContext) expand(value string) string {
	for name, v := range tc.variables {
		value = strings.ReplaceAll(value, "{"+name+"}", v)
	}
	return value
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) error {
	if err := tc.ensureServer(); err != nil {
		return err
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add headers
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// Step implementations

func theCurrentTimeIs(ctx context.Context, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ctx, fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(now)
	tc.clock.Freeze()

	return SetTestContext(ctx, tc), nil
}

func writesAreLimitedTo(ctx context.Context, maxRequests int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.server != nil {
		return ctx, fmt.Errorf("rate limit must be configured before the first request")
	}

	tc.cfg.RateLimit.MaxRequests = maxRequests
	tc.cfg.RateLimit.Window = time.Minute

	return SetTestContext(ctx, tc), nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.ensureServer()
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.send(method, endpoint, nil); err != nil {
		return ctx, err
	}

	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.send(method, endpoint, bytes.NewBufferString(tc.expand(body.Content))); err != nil {
		return ctx, err
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// iAmUser scopes following requests to a stable user id derived from name.
func iAmUser(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[middleware.UserIDHeader] = uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
	return SetTestContext(ctx, tc), nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, ok, err := tc.responseField(field)
	if err != nil {
		return ctx, err
	}
	if !ok || value == nil {
		return ctx, fmt.Errorf("field '%s' not found in response", field)
	}

	tc.variables[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
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
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok, err := tc.responseField(field)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	expected = tc.expand(expected)
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, ok, err := tc.responseField(field)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok, err := tc.responseField(field)
	if err != nil {
		return err
	}
	if ok && value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}

	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok, err := tc.responseField(field)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	items, isArray := value.([]any)
	if !isArray {
		return fmt.Errorf("field '%s' is not an array", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d. Body: %s", field, count, len(items), string(tc.responseBody))
	}

	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	actual := tc.response.Header.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}

	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual interface{}

	if err := json.Unmarshal([]byte(tc.expand(body.Content)), &expected); err != nil {
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

// responseField resolves a dot separated path such as "cycles.0.name" in the JSON response.
func (tc *TestContext) responseField(dotSeparatedField string) (any, bool, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, false, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	field := data
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch node := field.(type) {
		case map[string]any:
			value, ok := node[currentField]
			if !ok {
				return nil, false, nil
			}
			field = value
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false, nil
			}
			field = node[i]
		default:
			return nil, false, nil
		}
	}

	return field, true, nil
}
