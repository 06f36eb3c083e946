package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSanitizeBodyStripsScripts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var received struct {
		Nom     string `json:"nom"`
		Adresse string `json:"adresse"`
	}
	router.POST("/register", SanitizeBody(), func(ctx *gin.Context) {
		if err := ctx.ShouldBindJSON(&received); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})

	body := `{"nom":"<script>alert(1)</script>Marie","adresse":"12 rue <img src=x onerror=alert(1)> des Lilas"}`
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("handler failed with %d", recorder.Code)
	}
	if strings.Contains(received.Nom, "<script>") || strings.Contains(received.Nom, "alert") {
		t.Errorf("script payload survived sanitization: %q", received.Nom)
	}
	if !strings.Contains(received.Nom, "Marie") {
		t.Errorf("legitimate content lost: %q", received.Nom)
	}
	if strings.Contains(received.Adresse, "onerror") {
		t.Errorf("attribute payload survived sanitization: %q", received.Adresse)
	}
}

func TestSanitizeBodyIgnoresNonJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", SanitizeBody(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("raw bytes"))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("non-JSON request rejected with %d", recorder.Code)
	}
}
