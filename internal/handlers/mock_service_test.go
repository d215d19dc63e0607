package handlers

import (
	"context"
	"net/http"
	"time"

	"betterrest/internal/estimator"
	"betterrest/internal/models"
	"betterrest/internal/regression"
	"betterrest/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockForm struct {
	form models.Form
	err  error

	lastUserID  int
	lastReplace models.UserInputs
	lastSteps   int
	sleepCalls  int
	coffeeCalls int
}

func (m *mockForm) Get(_ context.Context, userID int) (models.Form, error) {
	m.lastUserID = userID
	return m.form, m.err
}
func (m *mockForm) Replace(_ context.Context, userID int, in models.UserInputs) (models.Form, error) {
	m.lastUserID = userID
	m.lastReplace = in
	return models.Form{UserID: userID, UserInputs: in}, m.err
}
func (m *mockForm) StepSleep(_ context.Context, userID int, steps int) (models.Form, error) {
	m.lastUserID, m.lastSteps = userID, steps
	m.sleepCalls++
	return m.form, m.err
}
func (m *mockForm) StepCoffee(_ context.Context, userID int, steps int) (models.Form, error) {
	m.lastUserID, m.lastSteps = userID, steps
	m.coffeeCalls++
	return m.form, m.err
}

type mockBedtime struct {
	calc       service.Calculation
	calcErr    error
	history    []models.EstimateRecord
	historyErr error
	info       regression.Info
	infoOK     bool

	lastOverride *models.UserInputs
	lastClock    estimator.Clock
	lastFilter   service.HistoryFilter
	calcCalls    int
}

func (m *mockBedtime) Calculate(_ context.Context, _ int, override *models.UserInputs, clock estimator.Clock) (service.Calculation, error) {
	m.calcCalls++
	m.lastOverride = override
	m.lastClock = clock
	return m.calc, m.calcErr
}
func (m *mockBedtime) Preview(in models.UserInputs, clock estimator.Clock) service.Calculation {
	// echoes the wake time in the requested clock
	alert := models.Alert{Title: models.AlertTitleSuccess, Message: clock.Format(in.WakeTime.On(time.Time{}))}
	return service.Calculation{Inputs: in, Alert: alert}
}
func (m *mockBedtime) History(_ context.Context, _ int, f service.HistoryFilter) ([]models.EstimateRecord, error) {
	m.lastFilter = f
	return m.history, m.historyErr
}
func (m *mockBedtime) ModelInfo() (regression.Info, bool) {
	return m.info, m.infoOK
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, estimator.Clock12)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
