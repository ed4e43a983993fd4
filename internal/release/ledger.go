package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

const ledgerName = "ledger.json"

// LedgerEntry records one completed activity for one version.
type LedgerEntry struct {
	Version     string    `json:"version"`
	Activity    string    `json:"activity"`
	CompletedAt time.Time `json:"completed_at"`
}

// Ledger is the durable record of completed activities, kept under the
// project's .cutter directory. Re-running a release for the same version
// consults it to skip what already happened.
type Ledger struct {
	path    string
	entries []LedgerEntry
}

// LoadLedger reads the ledger for the project at dir. A project that has
// never released has no ledger file; that is an empty ledger, not an error.
func LoadLedger(dir string) (*Ledger, error) {
	ledger := &Ledger{path: filepath.Join(dir, ".cutter", ledgerName)}
	buf, err := os.ReadFile(ledger.path)
	if errors.Is(err, os.ErrNotExist) {
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read ledger %q: %w", ledger.path, err)
	}
	if err := json.Unmarshal(buf, &ledger.entries); err != nil {
		return nil, fmt.Errorf("unable to parse ledger %q: %w", ledger.path, err)
	}
	return ledger, nil
}

func (ledger *Ledger) Completed(version, activity string) bool {
	for _, entry := range ledger.entries {
		if entry.Version == version && entry.Activity == activity {
			return true
		}
	}
	return false
}

func (ledger *Ledger) Entries() []LedgerEntry {
	entries := make([]LedgerEntry, len(ledger.entries))
	copy(entries, ledger.entries)
	return entries
}

// Record appends a completed activity and rewrites the ledger file
// atomically so a crash mid-write never corrupts the resume record.
func (ledger *Ledger) Record(version, activity string) error {
	ledger.entries = append(ledger.entries, LedgerEntry{
		Version:     version,
		Activity:    activity,
		CompletedAt: time.Now().UTC(),
	})
	if err := os.MkdirAll(filepath.Dir(ledger.path), 0o755); err != nil {
		return fmt.Errorf("unable to create ledger directory: %w", err)
	}
	buf, err := json.MarshalIndent(ledger.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(ledger.path, append(buf, '\n'), 0o644); err != nil {
		return fmt.Errorf("unable to write ledger %q: %w", ledger.path, err)
	}
	return nil
}
