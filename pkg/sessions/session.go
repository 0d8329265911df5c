// Package sessions persists task transcripts under a workspace directory.
// Each session owns a directory holding meta.json (lifecycle state),
// history.json (the ordered message transcript) and session.log.
package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Session statuses.
const (
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	metaFileName    = "meta.json"
	historyFileName = "history.json"
	logFileName     = "session.log"
)

// Meta tracks the lifecycle of one session.
type Meta struct {
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Steps      int       `json:"steps"`
	Failures   int       `json:"failures"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// Session is one task transcript. It is not safe for concurrent use.
type Session struct {
	ID string

	path          string
	meta          Meta
	history       []openai.ChatCompletionMessage
	historyLoaded bool
	log           *logrus.Entry
	logFile       *os.File
}

// Open opens the session stored at path, creating the directory and a fresh
// meta record if none exists yet.
func Open(path string) (*Session, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create session directory %s", path)
	}

	now := time.Now().Truncate(time.Second)
	s := &Session{
		ID:   filepath.Base(path),
		path: path,
		meta: Meta{
			Name:       filepath.Base(path),
			Status:     StatusRunning,
			CreatedAt:  now,
			LastActive: now,
		},
	}

	if data, err := os.ReadFile(s.filePath(metaFileName)); err == nil {
		if err := json.Unmarshal(data, &s.meta); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", s.filePath(metaFileName))
		}
	}

	logFile, err := os.OpenFile(s.filePath(logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session log")
	}
	s.logFile = logFile

	l := logrus.New()
	l.SetOutput(logFile)
	l.SetFormatter(&bannerFormatter{})
	s.log = logrus.NewEntry(l)

	return s, nil
}

// Meta returns a copy of the session's lifecycle record.
func (s *Session) Meta() Meta {
	return s.meta
}

// SetStatus updates the session status.
func (s *Session) SetStatus(status string) {
	s.meta.Status = status
	s.log.WithField("status", status).Info("session status changed")
}

// History returns the message transcript, loading it from disk on first use.
func (s *Session) History() ([]openai.ChatCompletionMessage, error) {
	if s.historyLoaded {
		return s.history, nil
	}

	data, err := os.ReadFile(s.filePath(historyFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read %s", s.filePath(historyFileName))
		}
	} else if err := json.Unmarshal(data, &s.history); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", s.filePath(historyFileName))
	}

	s.historyLoaded = true
	return s.history, nil
}

// AddMessage appends a message to the transcript. Assistant messages count
// as steps; failure marks a failed step.
func (s *Session) AddMessage(msg openai.ChatCompletionMessage, failure bool) error {
	if _, err := s.History(); err != nil {
		return err
	}

	s.history = append(s.history, msg)
	if msg.Role == openai.ChatMessageRoleAssistant {
		s.meta.Steps++
	}
	if failure {
		s.meta.Failures++
	}

	s.log.Infof("added message from %s", msg.Role)
	return nil
}

// Save persists meta and history.
func (s *Session) Save() error {
	s.meta.LastActive = time.Now().Truncate(time.Second)

	if err := writeJSON(s.filePath(metaFileName), s.meta); err != nil {
		return err
	}
	if s.historyLoaded {
		if err := writeJSON(s.filePath(historyFileName), s.history); err != nil {
			return err
		}
	}

	s.log.Debugf("session state saved to %s", s.path)
	return nil
}

// Close releases the session log file.
func (s *Session) Close() error {
	return s.logFile.Close()
}

func (s *Session) filePath(name string) string {
	return filepath.Join(s.path, name)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
