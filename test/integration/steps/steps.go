// Package steps provides step definitions for the BDD integration tests.
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
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/infra/dependency"
	"github.com/duitku/backend/internal/integration/adapters"
	"github.com/duitku/backend/internal/integration/persistence/model"
	"github.com/duitku/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// defaultTestPin is the PIN given to accounts created through login steps.
// Accounts without a configured PIN cannot log in at all.
const defaultTestPin = "123456"

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	currentEmail string

	currentAccountID    uuid.UUID
	currentBudgetID     uuid.UUID
	currentGoalID       uuid.UUID
	currentReceivableID uuid.UUID
	lastTransactionID   uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
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
			"accounts":     &model.AccountModel{},
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
			"goals":        &model.GoalModel{},
			"receivables":  &model.ReceivableModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account setup steps
	ctx.Given(`^an account exists with email "([^"]*)"$`, test.anAccountExistsWithEmail)
	ctx.Given(`^an account exists with email "([^"]*)" and pin "([^"]*)"$`, test.anAccountExistsWithEmailAndPin)
	ctx.Given(`^an admin account exists with email "([^"]*)"$`, test.anAdminAccountExistsWithEmail)
	ctx.Given(`^a protected admin account exists with email "([^"]*)"$`, test.aProtectedAdminAccountExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am logged in as admin "([^"]*)"$`, test.iAmLoggedInAsAdmin)

	// Ledger setup steps
	ctx.Given(`^a "([^"]*)" transaction exists of (\d+) in category "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a budget exists for category "([^"]*)" of (\d+) per month$`, test.aBudgetExistsForCategory)
	ctx.Given(`^a goal exists titled "([^"]*)" with target (\d+)$`, test.aGoalExistsTitled)
	ctx.Given(`^a goal exists titled "([^"]*)" with target (\d+) and saved (\d+)$`, test.aGoalExistsTitledWithSaved)
	ctx.Given(`^a receivable exists from "([^"]*)" of (\d+) due "([^"]*)"$`, test.aReceivableExistsFrom)
	ctx.Given(`^a receivable exists from "([^"]*)" of (\d+) with (\d+) repaid due "([^"]*)"$`, test.aReceivableExistsFromWithRepaid)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentEmail = ""
	t.currentAccountID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.currentReceivableID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
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

func (t *testContext) anAccountExistsWithEmail(email string) error {
	return t.createAccount(email, "", string(entity.AccountRoleUser), false)
}

func (t *testContext) anAccountExistsWithEmailAndPin(email, pin string) error {
	return t.createAccount(email, pin, string(entity.AccountRoleUser), false)
}

func (t *testContext) anAdminAccountExistsWithEmail(email string) error {
	return t.createAccount(email, "", string(entity.AccountRoleAdmin), false)
}

func (t *testContext) aProtectedAdminAccountExistsWithEmail(email string) error {
	return t.createAccount(email, "", string(entity.AccountRoleAdmin), true)
}

func (t *testContext) createAccount(email, pin, role string, protected bool) error {
	accountID := uuid.New()
	t.currentAccountID = accountID
	t.currentEmail = email

	var pinDigest string
	if pin != "" {
		digest, err := adapters.NewPinService().HashPin(pin, accountID.String())
		if err != nil {
			return fmt.Errorf("failed to hash pin: %w", err)
		}
		pinDigest = digest
	}

	now := time.Now().UTC()
	account := &model.AccountModel{
		ID:        accountID,
		Email:     email,
		Name:      "Akun " + email,
		PinDigest: pinDigest,
		Role:      role,
		Currency:  "IDR",
		Theme:     "light",
		Protected: protected,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(account).Error
}

// iAmLoggedInAs creates the account when needed and logs in through the
// API so a workspace is opened and a session is persisted.
func (t *testContext) iAmLoggedInAs(email string) error {
	return t.logIn(email, string(entity.AccountRoleUser))
}

func (t *testContext) iAmLoggedInAsAdmin(email string) error {
	return t.logIn(email, string(entity.AccountRoleAdmin))
}

func (t *testContext) logIn(email, role string) error {
	t.startServer()

	previousAccountID := t.currentAccountID

	var account model.AccountModel
	if err := t.db.DbConn.Where("email = ?", email).First(&account).Error; err != nil {
		if err := t.createAccount(email, defaultTestPin, role, false); err != nil {
			return err
		}
	} else {
		t.currentAccountID = account.ID
		t.currentEmail = email
		if account.PinDigest == "" {
			digest, err := adapters.NewPinService().HashPin(defaultTestPin, account.ID.String())
			if err != nil {
				return fmt.Errorf("failed to hash pin: %w", err)
			}
			if err := t.db.DbConn.Model(&account).Update("pin_digest", digest).Error; err != nil {
				return err
			}
		}
	}

	// Admin logins administer some other account, so keep the account_id
	// placeholder pointing at the account set up before the login.
	if role == string(entity.AccountRoleAdmin) && previousAccountID != uuid.Nil {
		t.currentAccountID = previousAccountID
	}

	payload := fmt.Sprintf(`{"email": %q, "pin": %q}`, email, defaultTestPin)
	resp, err := t.client.Post(t.uri+"/api/v1/auth/login", "application/json", strings.NewReader(payload))
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(body))
	}

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResponse); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if loginResponse.AccessToken == "" {
		return errors.New("login did not return an access token")
	}

	t.accessToken = loginResponse.AccessToken
	return nil
}

func (t *testContext) aTransactionExists(txnType string, amount int, category, date string) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transaction := &model.TransactionModel{
		ID:          transactionID,
		AccountID:   t.currentAccountID,
		Type:        txnType,
		Amount:      decimal.NewFromInt(int64(amount)),
		Category:    category,
		Description: "Transaksi " + category,
		Date:        parsedDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transaction).Error
}

func (t *testContext) aBudgetExistsForCategory(category string, amount int) error {
	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:        budgetID,
		AccountID: t.currentAccountID,
		Category:  category,
		Amount:    decimal.NewFromInt(int64(amount)),
		Period:    string(entity.BudgetPeriodMonthly),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) aGoalExistsTitled(title string, target int) error {
	return t.aGoalExistsTitledWithSaved(title, target, 0)
}

func (t *testContext) aGoalExistsTitledWithSaved(title string, target, saved int) error {
	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goal := &model.GoalModel{
		ID:            goalID,
		AccountID:     t.currentAccountID,
		Title:         title,
		TargetAmount:  decimal.NewFromInt(int64(target)),
		CurrentAmount: decimal.NewFromInt(int64(saved)),
		Deadline:      now.AddDate(1, 0, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goal).Error
}

func (t *testContext) aReceivableExistsFrom(debtor string, target int, due string) error {
	return t.aReceivableExistsFromWithRepaid(debtor, target, 0, due)
}

func (t *testContext) aReceivableExistsFromWithRepaid(debtor string, target, repaid int, due string) error {
	dueDate, err := time.Parse("2006-01-02", due)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", due, err)
	}

	receivableID := uuid.New()
	t.currentReceivableID = receivableID

	status := string(entity.ReceivableStatusUnpaid)
	if repaid >= target {
		status = string(entity.ReceivableStatusPaid)
	}

	now := time.Now().UTC()
	receivable := &model.ReceivableModel{
		ID:            receivableID,
		AccountID:     t.currentAccountID,
		DebtorName:    debtor,
		TargetAmount:  decimal.NewFromInt(int64(target)),
		CurrentAmount: decimal.NewFromInt(int64(repaid)),
		DueDate:       dueDate,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(receivable).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
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
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{receivable_id}}", t.currentReceivableID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
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

	t.response = &response{status: resp.StatusCode, raw: bodyBytes}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers created record ids so later steps can reference
// them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "period"):
		t.currentBudgetID = id
	case hasKey(body, "title"):
		t.currentGoalID = id
	case hasKey(body, "debtor_name"):
		t.currentReceivableID = id
	case hasKey(body, "type"):
		t.lastTransactionID = id
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
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

func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response body does not contain %q: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := formatValue(value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entityModel, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entityModel, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) countRows(entityModel any, criteria map[string]any) (int, error) {
	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}

	return entitySlicePtr.Elem().Len(), nil
}

// formatValue renders a decoded JSON value for comparison. Numbers come
// out of encoding/json as float64, which %v prints in scientific
// notation for large magnitudes.
func formatValue(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
