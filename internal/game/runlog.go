package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"termrpg/internal/combat"
	"termrpg/internal/config"
)

// runLogFile is the combat history file inside the data directory.
const runLogFile = "combat.jsonl"

// Record is one line of the combat history.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Player    string    `json:"player"`
	*combat.Result
}

// RunLog appends finished combats as JSON lines. It is safe for use by
// several games at once; a nil *RunLog records nothing.
type RunLog struct {
	path   string
	player string
	now    func() time.Time
}

// NewRunLog writes to path.
func NewRunLog(path string) *RunLog {
	return &RunLog{path: path, now: time.Now}
}

// DefaultRunLogPath returns $XDG_DATA_HOME/termrpg/combat.jsonl.
func DefaultRunLogPath() (string, error) {
	dir, err := config.DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, runLogFile), nil
}

// ForPlayer returns a RunLog sharing the same file that stamps records
// with name.
func (l *RunLog) ForPlayer(name string) *RunLog {
	if l == nil {
		return nil
	}
	return &RunLog{path: l.path, player: name, now: l.now}
}

// Path returns the file being written.
func (l *RunLog) Path() string { return l.path }

var fileLocks sync.Map // path → *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Append writes res as a single line.
func (l *RunLog) Append(res *combat.Result) error {
	if l == nil || res == nil {
		return nil
	}
	data, err := json.Marshal(Record{Timestamp: l.now().UTC(), Player: l.player, Result: res})
	if err != nil {
		return fmt.Errorf("run log: marshal: %w", err)
	}
	data = append(data, '\n')

	mu := lockFor(l.path)
	mu.Lock()
	defer mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("run log: %w", err)
	}
	return f.Close()
}
