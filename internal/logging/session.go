package logging

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
)

// GenerateSessionID returns a timestamp plus four random hex chars,
// e.g. 20261016_091502_a7b3.
func GenerateSessionID() string {
	return newSessionID(time.Now())
}

func newSessionID(now time.Time) string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID returns the random suffix of a session ID.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// SessionFilename returns the log file name for a session.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// SessionLogPath joins dir and the session's log file name.
func SessionLogPath(dir, sessionID string) string {
	return filepath.Join(dir, SessionFilename(sessionID))
}

// ParseSessionFilename is the inverse of SessionFilename.
func ParseSessionFilename(filename string) (string, bool) {
	rest, ok := strings.CutPrefix(filename, sessionPrefix)
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, sessionSuffix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
