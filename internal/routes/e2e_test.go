package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fleetadmin/internal/config"
	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/services"
	"fleetadmin/internal/testutil"
)

func postJSON(t *testing.T, r http.Handler, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func driverPayload(license, fullName string) map[string]any {
	return map[string]any{
		"personal": map[string]any{
			"fullName": fullName, "contact": "0244000000", "location": "Accra",
			"gender": "female", "age": 29, "licenseNumber": license,
		},
		"pin":                 "4321",
		"vehicle":             map[string]any{"carModel": "Vitz", "modelYear": 2012, "plateNumber": "GT-55-21"},
		"resourcesInterest":   []string{"fuel"},
		"payment":             map[string]any{"amountPaid": "200", "weeklyPayment": "70", "paymentMode": "cash"},
		"resourcesAllocation": []string{"tyres"},
	}
}

func TestRegistrationFlow(t *testing.T) {
	db := testutil.MigratedDB(t)
	ctx := context.Background()

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		Env:  config.EnvDevelopment,
		CORS: []string{"*"},
		JWT:  config.JWTConfig{Secret: "e2e-secret", ExpiresIn: time.Hour, Issuer: "fleetadmin"},
	}

	identityRepo := repository.NewIdentityRepository(db)
	store := services.NewIdentityStore(identityRepo, bcrypt.MinCost, log)
	tokens := services.NewTokenService(cfg.JWT)
	registry := services.NewRegistry(repository.NewDriverRepository(db), repository.NewMerchantRepository(db), bcrypt.MinCost, log)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	r := SetupRouter(Deps{
		Config:   cfg,
		Log:      log,
		DB:       sqlDB,
		Gate:     services.NewAuthorizationGate(tokens, identityRepo),
		Sessions: services.NewSessionService(store, tokens, log),
		Workflow: services.NewRegistrationWorkflow(identityRepo, store, registry, log),
	})

	_, err = store.Create(ctx, models.RoleSuperAdmin, "s1@x.com", "S1", "root-pw")
	require.NoError(t, err)

	w, body := postJSON(t, r, "/api/superadmin/login", "", map[string]string{"email": "s1@x.com", "password": "root-pw"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rootToken := body["token"].(string)

	w, _ = postJSON(t, r, "/api/superadmin/admin/reg", rootToken, map[string]string{"email": "alice@x.com", "name": "Alice", "password": "alice-pw"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body = postJSON(t, r, "/api/admin/login", "", map[string]string{"email": "alice@x.com", "password": "alice-pw"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	adminToken := body["token"].(string)

	w, body = postJSON(t, r, "/api/admin/driver/reg", adminToken, driverPayload("LIC-001", "Efua Asante"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Regexp(t, `^MTC-[A-Za-z0-9]+$`, body["uniqueID"])
	assert.NotContains(t, body, "pin")

	w, body = postJSON(t, r, "/api/admin/driver/reg", adminToken, driverPayload("LIC-001", "Someone Else"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Driver already exists", body["message"])

	w, body = postJSON(t, r, "/api/superadmin/merchant/reg", adminToken, map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, token failed", body["message"])

	w, body = postJSON(t, r, "/api/admin/login", "", map[string]string{"email": "alice@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Admin Email or Password", body["message"])
	assert.NotContains(t, body, "token")

	w = get(r, "/api/superadmin/activedrivers", rootToken)
	require.Equal(t, http.StatusOK, w.Code)
	var active []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Len(t, active, 1)

	w = get(r, "/api/superadmin/inactivedrivers", rootToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = get(r, "/api/superadmin/driversamount", rootToken)
	require.Equal(t, http.StatusOK, w.Code)
	var amounts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &amounts))
	require.Len(t, amounts, 1)
	assert.Equal(t, "200", amounts[0]["payment"].(map[string]any)["amountPaid"])
}
