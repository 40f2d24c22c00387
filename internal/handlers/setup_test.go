package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"biztime-backend/internal/apperr"
	"biztime-backend/internal/middleware"
	"biztime-backend/internal/models"
	"biztime-backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp wires the full engine against an in-memory store, same
// middleware chain as main.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Invoice{},
		&models.Industry{},
		&models.CompanyIndustry{},
	))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(apperr.Normalizer())
	routes.RegisterRoutes(r, db)
	return r, db
}

// do issues a request against the engine. body may be nil, a JSON-encodable
// value, or a raw string (for deliberately malformed payloads).
func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// errMessage digs the message out of the canonical error envelope.
func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	envelope := decode(t, w)["error"].(map[string]any)
	return envelope["message"].(string)
}

func seedCompany(t *testing.T, db *gorm.DB, code, name, description string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Company{Code: code, Name: name, Description: description}).Error)
}

func seedInvoice(t *testing.T, db *gorm.DB, compCode string, amt float64) int {
	t.Helper()
	inv := &models.Invoice{CompCode: compCode, Amt: amt, AddDate: time.Now()}
	require.NoError(t, db.Create(inv).Error)
	return inv.ID
}

func seedIndustry(t *testing.T, db *gorm.DB, code, label string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Industry{Code: code, Industry: label}).Error)
}

func seedPair(t *testing.T, db *gorm.DB, compCode, indCode string) {
	t.Helper()
	require.NoError(t, db.Create(&models.CompanyIndustry{CompCode: compCode, IndCode: indCode}).Error)
}

func todayISO() string {
	return time.Now().Format("2006-01-02")
}
