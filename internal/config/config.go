package config

import (
	"os"
	"strconv"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
)

// Config 应用配置
type Config struct {
	Port           string
	JWTSecret      string
	AuthEnabled    bool
	RateLimit      int   // requests per minute per IP
	MaxUploadBytes int64 // 最大上传文件大小（字节）

	// Default detection parameters, overridable per request.
	Detection models.DetectionConfig
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	detection := models.DefaultDetectionConfig()
	detection.FixedThresholdKmh = envFloat("WAVE_THRESHOLD_KMH", detection.FixedThresholdKmh)
	detection.MinDurationSeconds = envFloat("WAVE_MIN_DURATION_S", detection.MinDurationSeconds)
	detection.UseAdaptive = envBool("WAVE_ADAPTIVE", detection.UseAdaptive)
	detection.WindowSeconds = envFloat("WAVE_WINDOW_S", detection.WindowSeconds)
	detection.KSigma = envFloat("WAVE_K_SIGMA", detection.KSigma)
	detection.DropPercent = envFloat("WAVE_DROP_PERCENT", detection.DropPercent)
	detection.EndGraceSeconds = envFloat("WAVE_END_GRACE_S", detection.EndGraceSeconds)
	detection.DirectionStdMaxDegrees = envFloat("WAVE_DIRECTION_STD_MAX_DEG", detection.DirectionStdMaxDegrees)
	detection.Normalize()

	return &Config{
		Port:           port,
		JWTSecret:      jwtSecret,
		AuthEnabled:    envBool("AUTH_ENABLED", false),
		RateLimit:      envInt("RATE_LIMIT", 120),
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_MB", 32)) * 1024 * 1024,
		Detection:      detection,
	}
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
