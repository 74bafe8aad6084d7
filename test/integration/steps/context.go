// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brokerledger/backend/config"
	"github.com/brokerledger/backend/internal/infra/dependency"
	"github.com/brokerledger/backend/internal/integration/persistence/model"
	"github.com/brokerledger/backend/test/integration/mock"
)

// testContext holds per-scenario state: the HTTP client, the last response,
// and the IDs captured while driving the API.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	lenderID          uuid.UUID
	borrowerID        uuid.UUID
	intermediaryID    uuid.UUID
	lastPartyID       uuid.UUID
	lastTransactionID uuid.UUID
	lastPaymentID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	testDB         *mock.Db
	testServerPort int
	portInit       sync.Once
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"parties":           &model.PartyModel{},
			"transactions":      &model.TransactionModel{},
			"partial_payments":  &model.PartialPaymentModel{},
			"balance_snapshots": &model.BalanceSnapshotModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Party setup steps
	ctx.Given(`^a lender named "([^"]*)" exists$`, test.aLenderNamedExists)
	ctx.Given(`^a borrower named "([^"]*)" exists$`, test.aBorrowerNamedExists)
	ctx.Given(`^an intermediary named "([^"]*)" exists$`, test.anIntermediaryNamedExists)

	// Ledger setup steps
	ctx.Given(`^a transaction exists for principal "([^"]*)" from "([^"]*)" to "([^"]*)"$`, test.aTransactionExistsForPrincipal)
	ctx.Given(`^a payment of "([^"]*)" was recorded on "([^"]*)"$`, test.aPaymentWasRecordedOn)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.lenderID = uuid.Nil
	t.borrowerID = uuid.Nil
	t.intermediaryID = uuid.Nil
	t.lastPartyID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastPaymentID = uuid.Nil

	if t.db != nil {
		_ = t.db.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			cfg.Server.Environment = "test"

			// Backup endpoints archive the configured database file; point
			// them at a throwaway copy so they work against the in-memory
			// test store.
			tempDir, err := os.MkdirTemp("", "brokerledger-integration")
			if err != nil {
				panic(err)
			}
			cfg.Database.Driver = "sqlite"
			cfg.Database.Path = filepath.Join(tempDir, "ledger.db")
			cfg.Backup.Dir = filepath.Join(tempDir, "backups")
			if err := os.WriteFile(cfg.Database.Path, []byte("integration ledger"), 0o644); err != nil {
				panic(err)
			}

			injector := dependency.NewInjector(cfg, testDB.DbConn)
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{lender_id}}", t.lenderID.String())
	content = strings.ReplaceAll(content, "{{borrower_id}}", t.borrowerID.String())
	content = strings.ReplaceAll(content, "{{intermediary_id}}", t.intermediaryID.String())
	content = strings.ReplaceAll(content, "{{party_id}}", t.lastPartyID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{payment_id}}", t.lastPaymentID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

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
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers the IDs of created resources so later steps can
// address them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, isParty := body["role"]; isParty {
				t.lastPartyID = id
			} else if _, isTransaction := body["principal"]; isTransaction {
				t.lastTransactionID = id
			}
		}
	}

	if pmt, ok := body["payment"].(map[string]any); ok {
		if idStr, ok := pmt["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastPaymentID = id
			}
		}
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if value := getFieldValue(body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		obj, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = obj[currentField]
	}

	return field
}
