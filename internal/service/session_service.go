package service

import (
	"fmt"
	"io"
	"sync"

	"github.com/wavescout/wavetrack-backend-go/internal/detect"
	"github.com/wavescout/wavetrack-backend-go/internal/export"
	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/parser"
)

// SessionService owns the single in-flight session: the loaded points, the
// active detection parameters and the latest detection result. Arrays are
// rebuilt wholesale on every load or detection run; a failed load leaves
// the previous session untouched.
type SessionService struct {
	mu     sync.RWMutex
	name   string
	points []models.Point
	cfg    models.DetectionConfig
	result *detect.Result
}

// NewSessionService creates a session service with the given default
// detection parameters.
func NewSessionService(defaults models.DetectionConfig) *SessionService {
	defaults.Normalize()
	return &SessionService{cfg: defaults}
}

// Load parses a session file and runs detection with the current
// parameters. On any parse failure the previous session is kept as-is.
func (s *SessionService) Load(r io.Reader, filename string) (*models.SessionResponse, error) {
	points, err := parser.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := detect.Run(points, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze session: %w", err)
	}

	s.name = filename
	s.points = points
	s.result = result

	return s.responseLocked(), nil
}

// Detect reruns detection over the loaded session with new parameters.
// The parameters become the session's active configuration.
func (s *SessionService) Detect(cfg models.DetectionConfig) (*models.SessionResponse, error) {
	cfg.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) == 0 {
		return nil, fmt.Errorf("no session loaded")
	}

	result, err := detect.Run(s.points, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze session: %w", err)
	}

	s.cfg = cfg
	s.result = result

	return s.responseLocked(), nil
}

// Config returns the active detection parameters.
func (s *SessionService) Config() models.DetectionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Segments returns the per-segment kinematics of the loaded session.
func (s *SessionService) Segments() ([]models.Segment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil, fmt.Errorf("no session loaded")
	}
	return s.result.Segments, nil
}

// Waves returns the enriched, filtered waves of the loaded session.
func (s *SessionService) Waves() ([]models.Wave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil, fmt.Errorf("no session loaded")
	}
	return s.result.Waves, nil
}

// Stats returns the aggregate session summary.
func (s *SessionService) Stats() (*models.SessionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil, fmt.Errorf("no session loaded")
	}
	return s.responseLocked(), nil
}

// Export writes the session track plus one GPX track per wave.
func (s *SessionService) Export(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return fmt.Errorf("no session loaded")
	}
	return export.WriteGPX(w, s.name, s.points, s.result.Waves)
}

func (s *SessionService) responseLocked() *models.SessionResponse {
	return &models.SessionResponse{
		Name:                s.name,
		PointCount:          len(s.points),
		SegmentCount:        len(s.result.Segments),
		WaveCount:           len(s.result.Waves),
		RejectedByDirection: s.result.RejectedByDirection,
		Stats:               s.result.Stats,
	}
}
