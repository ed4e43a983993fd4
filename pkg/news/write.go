package news

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// UpdateChangelog folds a release section into the changelog at path. The
// rewrite goes through a pending file and an atomic rename so an aborted
// release never leaves a half written changelog behind.
func UpdateChangelog(path string, section Section) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read changelog %q: %w", path, err)
	}
	page, err := ParsePage(string(content))
	if err != nil {
		return fmt.Errorf("unable to parse changelog %q: %w", path, err)
	}
	if err := page.Add(section); err != nil {
		return fmt.Errorf("unable to add release section to changelog %q: %w", path, err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("unable to stage changelog %q: %w", path, err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()
	if _, err := page.WriteTo(pending); err != nil {
		return fmt.Errorf("unable to write changelog %q: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("unable to replace changelog %q: %w", path, err)
	}
	return nil
}
