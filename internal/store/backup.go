package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nonabeauty/storeadmin/internal/domain"
)

const snapshotPrefix = "nona-data-"

// Export materializes the full dataset. Every section is present even
// when empty so a fresh import reproduces the store exactly.
func (s *Storage) Export() *domain.BackupData {
	return &domain.BackupData{
		Config:     s.SiteConfig(),
		Products:   s.Products(),
		Offers:     s.Offers(),
		Categories: s.Categories(),
		Images:     s.Images(),
	}
}

// Import parses a backup payload and replaces every store whose section
// is present; absent sections are left untouched. A malformed payload
// aborts the whole import before anything is written.
func (s *Storage) Import(payload []byte) error {
	var data domain.BackupData
	if err := json.Unmarshal(payload, &data); err != nil {
		return errors.Wrap(err, "parse import payload")
	}
	if data.Config != nil {
		s.SaveSiteConfig(data.Config)
	}
	if data.Products != nil {
		s.SaveProducts(data.Products)
	}
	if data.Offers != nil {
		s.SaveOffers(data.Offers)
	}
	if data.Categories != nil {
		s.SaveCategories(data.Categories)
	}
	if data.Images != nil {
		s.SaveImages(data.Images)
	}
	return nil
}

// Snapshot writes a timestamped export file into dir and prunes old
// snapshots beyond keep. Returns the written path.
func (s *Storage) Snapshot(dir string, keep int) (string, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode snapshot")
	}
	name := fmt.Sprintf("%s%d.json", snapshotPrefix, time.Now().UnixMilli())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(err, "write snapshot")
	}
	s.pruneSnapshots(dir, keep)
	return path, nil
}

func (s *Storage) pruneSnapshots(dir string, keep int) {
	if keep <= 0 {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), snapshotPrefix) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return
	}
	// timestamped names sort chronologically
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			zap.L().Warn("failed to prune snapshot", zap.String("file", name), zap.Error(err))
		}
	}
}
