package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavescout/wavetrack-backend-go/internal/config"
	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/service"
)

const rideGPX = `<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1"><trk><trkseg>
<trkpt lat="43.480000" lon="-1.560000"><time>2025-07-14T09:30:00Z</time></trkpt>
<trkpt lat="43.480020" lon="-1.560000"><time>2025-07-14T09:30:01Z</time></trkpt>
<trkpt lat="43.480040" lon="-1.560000"><time>2025-07-14T09:30:02Z</time></trkpt>
<trkpt lat="43.480120" lon="-1.560000"><time>2025-07-14T09:30:03Z</time></trkpt>
<trkpt lat="43.480200" lon="-1.560000"><time>2025-07-14T09:30:04Z</time></trkpt>
<trkpt lat="43.480280" lon="-1.560000"><time>2025-07-14T09:30:05Z</time></trkpt>
<trkpt lat="43.480360" lon="-1.560000"><time>2025-07-14T09:30:06Z</time></trkpt>
<trkpt lat="43.480380" lon="-1.560000"><time>2025-07-14T09:30:07Z</time></trkpt>
<trkpt lat="43.480400" lon="-1.560000"><time>2025-07-14T09:30:08Z</time></trkpt>
</trkseg></trk></gpx>`

func testRouter(authEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:           ":0",
		JWTSecret:      "test-secret",
		AuthEnabled:    authEnabled,
		RateLimit:      1000,
		MaxUploadBytes: 8 << 20,
		Detection:      models.DefaultDetectionConfig(),
	}
	cfg.Detection.UseAdaptive = false
	cfg.Detection.FixedThresholdKmh = 15
	cfg.Detection.MinDurationSeconds = 2

	return SetupRouter(cfg, service.NewSessionService(cfg.Detection))
}

func uploadRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "ride.gpx")
	require.NoError(t, err)
	_, err = part.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestUploadAndQueryFlow(t *testing.T) {
	router := testRouter(false)

	// Upload the ride.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, rideGPX))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Code int                    `json:"code"`
		Data models.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Zero(t, envelope.Code)
	assert.Equal(t, 9, envelope.Data.PointCount)
	assert.Equal(t, 1, envelope.Data.WaveCount)

	// Waves are queryable.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/waves", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "peakSpeedKmh")

	// Segments too.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/segments", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "speedKmh")

	// Stats report the best wave.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bestWave")

	// Export returns a GPX attachment with one track per wave.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "session-waves.gpx")
	assert.Contains(t, w.Body.String(), "Wave 1")
}

func TestDetectReRunsWithNewParameters(t *testing.T) {
	router := testRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, rideGPX))
	require.Equal(t, http.StatusOK, w.Code)

	body := `{"fixedThresholdKmh":200,"useAdaptive":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/detect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"waveCount":0`)
}

func TestDetectDefaultsToActiveConfiguration(t *testing.T) {
	router := testRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, rideGPX))
	require.Equal(t, http.StatusOK, w.Code)

	// An empty body reruns detection with the active parameters, not the
	// built-in defaults.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/detect", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"waveCount":1`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/config", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fixedThresholdKmh":15`)
	assert.Contains(t, w.Body.String(), `"useAdaptive":false`)
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:           ":0",
		JWTSecret:      "test-secret",
		RateLimit:      1000,
		MaxUploadBytes: 64,
		Detection:      models.DefaultDetectionConfig(),
	}
	router := SetupRouter(cfg, service.NewSessionService(cfg.Detection))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, rideGPX))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsMalformedFile(t *testing.T) {
	router := testRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "<gpx><trk>"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueriesWithoutSession(t *testing.T) {
	router := testRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/waves", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadRequiresAuthWhenEnabled(t *testing.T) {
	router := testRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, rideGPX))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Read endpoints stay open.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/stats", nil))
	assert.Equal(t, http.StatusNotFound, w.Code) // no session, but not 401
}
