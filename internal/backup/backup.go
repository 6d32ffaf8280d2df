// Package backup copies the ledger files into timestamped snapshots and
// plain CSV exports. It only ever reads the source files.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Manager handles ad-hoc backups and exports of the ledger files.
type Manager struct {
	sources   []string
	backupDir string
	exportDir string
}

// NewManager creates a manager for the given source files.
func NewManager(sources []string, backupDir, exportDir string) *Manager {
	return &Manager{sources: sources, backupDir: backupDir, exportDir: exportDir}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// BackupAll copies every existing source file into the backup directory with
// a timestamp prefix. Missing sources are skipped, not errors.
func (m *Manager) BackupAll() ([]string, error) {
	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	var created []string
	for _, src := range m.sources {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		dst := filepath.Join(m.backupDir, fmt.Sprintf("%s_%s", stamp, filepath.Base(src)))
		if err := copyFile(src, dst); err != nil {
			return created, err
		}
		created = append(created, dst)
	}
	return created, nil
}

// Prune deletes backups older than the retention window and returns how many
// were removed.
func (m *Manager) Prune(retention time.Duration) (int, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-retention)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(m.backupDir, entry.Name())); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	return deleted, nil
}

// Export copies one source file into the export directory under a
// timestamped name and returns its path.
func (m *Manager) Export(src string) (string, error) {
	found := false
	for _, s := range m.sources {
		if s == src {
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("unknown export source %q", src)
	}

	if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
		return "", err
	}
	base := filepath.Base(src)
	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), base)
	dst := filepath.Join(m.exportDir, name)
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Sources returns the managed source files.
func (m *Manager) Sources() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}
