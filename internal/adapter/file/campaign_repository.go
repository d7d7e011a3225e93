package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"campaign-tracker/internal/adapter/slot"
	"campaign-tracker/internal/core/domain"
)

// CampaignRepository stores the campaign slot as a JSON file on local disk.
type CampaignRepository struct {
	path   string
	logger *slog.Logger
}

// NewCampaignRepository returns a repository backed by the file at path. The
// parent directory is created when missing.
func NewCampaignRepository(path string, logger *slog.Logger) (*CampaignRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignRepository{path: path, logger: logger}, nil
}

// ListAll reads the file. A missing file is an empty slot.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Campaign{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return slot.DecodeOrEmpty(ctx, r.logger, r.path, data), nil
}

// ReplaceAll writes the whole slot to a temporary file and renames it over
// the previous one so readers never see a partial write.
func (r *CampaignRepository) ReplaceAll(_ context.Context, campaigns []domain.Campaign) error {
	data, err := slot.Encode(campaigns)
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close slot file: %w", err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
