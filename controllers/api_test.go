package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/models"
	"github.com/botanika-shop/botanika-api/routes"
	"github.com/botanika-shop/botanika-api/services"
)

var apiTestDBCounter int64

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&apiTestDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Category{}, &models.Plant{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	initializers.DB = db

	router := gin.New()
	routes.DefaultRoutes(router)
	routes.AuthRoutes(router)
	routes.SearchRoutes(router)
	routes.PlantRoutes(router)
	routes.CartRoutes(router)
	routes.StockRoutes(router)
	routes.OrderRoutes(router)
	return router
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func performAuthedJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)
	return recorder
}

func adminToken(t *testing.T) string {
	t.Helper()
	admin := models.User{Nom: "Admin", Email: "admin@example.com", Password: "irrelevant", Role: "admin"}
	if err := initializers.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	token, err := services.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("failed to sign admin token: %v", err)
	}
	return token
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response %q: %v", recorder.Body.String(), err)
	}
	return payload
}

func seedPlant(t *testing.T, name string, price float64, stock int) models.Plant {
	t.Helper()
	plant := models.Plant{Name: name, Price: price, StockQuantity: stock, IsAvailable: true}
	if err := initializers.DB.Create(&plant).Error; err != nil {
		t.Fatalf("failed to seed plant: %v", err)
	}
	return plant
}

func TestGetPlantNotFound(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodGet, "/api/plants/9999", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	payload := decodeBody(t, resp)
	if payload["success"] != false || payload["message"] != "Plante non trouvée" {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestGetPlantByID(t *testing.T) {
	router := setupRouter(t)
	plant := seedPlant(t, "Aglaonema", 150, 32)

	resp := performJSON(router, http.MethodGet, fmt.Sprintf("/api/plants/%d", plant.ID), "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := decodeBody(t, resp)
	plantPayload, ok := payload["plant"].(map[string]any)
	if !ok {
		t.Fatalf("missing plant in payload %v", payload)
	}
	if plantPayload["name"] != "Aglaonema" {
		t.Errorf("unexpected plant payload %v", plantPayload)
	}
}

func TestCartAddInsufficientStockResponse(t *testing.T) {
	router := setupRouter(t)
	seedPlant(t, "Fittonia", 25, 2)

	resp := performJSON(router, http.MethodPost, "/api/cart/add", `{"plantName":"Fittonia","quantity":3,"userId":7}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeBody(t, resp)
	message, _ := payload["message"].(string)
	if !strings.Contains(message, "Stock insuffisant") || !strings.Contains(message, "2") {
		t.Errorf("expected available count in message, got %q", message)
	}
}

func TestCartAddAndFetchFlow(t *testing.T) {
	router := setupRouter(t)
	seedPlant(t, "Aglaonema", 150, 32)

	add := performJSON(router, http.MethodPost, "/api/cart/add", `{"plantName":"Aglaonema","quantity":2,"userId":7}`)
	if add.Code != http.StatusOK {
		t.Fatalf("add failed with %d: %s", add.Code, add.Body.String())
	}

	get := performJSON(router, http.MethodGet, "/api/cart/7", "")
	if get.Code != http.StatusOK {
		t.Fatalf("fetch failed with %d", get.Code)
	}
	payload := decodeBody(t, get)
	if payload["totalItems"] != float64(2) {
		t.Errorf("expected totalItems 2, got %v", payload["totalItems"])
	}
	if payload["total"] != float64(300) {
		t.Errorf("expected total 300, got %v", payload["total"])
	}
}

func TestCreatePlantAcceptsZeroPrice(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter(t)
	token := adminToken(t)

	resp := performAuthedJSON(router, http.MethodPost, "/api/plants", token,
		`{"name":"Bouture offerte","price":0,"stockQuantity":5}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a free plant, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodeBody(t, resp)
	if payload["plantId"] == nil {
		t.Fatalf("missing plantId in payload %v", payload)
	}

	var plant models.Plant
	if err := initializers.DB.First(&plant, uint(payload["plantId"].(float64))).Error; err != nil {
		t.Fatalf("created plant not found: %v", err)
	}
	if plant.Price != 0 {
		t.Errorf("expected price 0, got %v", plant.Price)
	}
}

func TestAdjustStockEndpoint(t *testing.T) {
	router := setupRouter(t)
	seedPlant(t, "Zamioculcas", 199.99, 10)

	resp := performJSON(router, http.MethodPut, "/plantes/stock", `{"nom":"Zamioculcas","action":"decrease","quantity":4}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodeBody(t, resp)
	if payload["newStock"] != float64(6) {
		t.Errorf("expected newStock 6, got %v", payload["newStock"])
	}
	if payload["plantName"] != "Zamioculcas" {
		t.Errorf("expected plantName echoed, got %v", payload["plantName"])
	}

	over := performJSON(router, http.MethodPut, "/plantes/stock", `{"nom":"Zamioculcas","action":"decrease","quantity":100}`)
	if over.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized decrease, got %d", over.Code)
	}
}

func TestRegisterValidationResponse(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/api/register",
		`{"nom":"Marie Dupont","email":"marie@example.com","password":"abcde","adresse":"12 rue des Lilas","telephone":"0600112233"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	payload := decodeBody(t, resp)
	errorList, ok := payload["errors"].([]any)
	if !ok || len(errorList) == 0 {
		t.Fatalf("expected an errors list, got %v", payload)
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := setupRouter(t)

	register := performJSON(router, http.MethodPost, "/api/register",
		`{"nom":"Marie Dupont","email":"Marie@Example.com","password":"motdepasse","adresse":"12 rue des Lilas","telephone":"0600112233"}`)
	if register.Code != http.StatusOK {
		t.Fatalf("register failed with %d: %s", register.Code, register.Body.String())
	}

	login := performJSON(router, http.MethodPost, "/api/login",
		`{"email":"marie@example.com","password":"motdepasse"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", login.Code, login.Body.String())
	}
	payload := decodeBody(t, login)
	if payload["token"] == "" || payload["token"] == nil {
		t.Error("expected a session token in the login response")
	}

	bad := performJSON(router, http.MethodPost, "/api/login",
		`{"email":"marie@example.com","password":"mauvais"}`)
	if bad.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", bad.Code)
	}
	badPayload := decodeBody(t, bad)
	if badPayload["message"] != "Email ou mot de passe incorrect" {
		t.Errorf("unexpected unauthorized message %v", badPayload["message"])
	}
}

func TestCheckoutRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/api/orders/checkout", `{"paymentMethod":"card"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.Code)
	}
}
