// Package slot encodes the campaign set stored in a single named slot. Every
// backend persists the same JSON array so slots can be moved between them.
package slot

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"campaign-tracker/internal/core/domain"
)

// DefaultName is the slot name used when none is configured.
const DefaultName = "clarul_campaigns"

// Encode serialises campaigns as a JSON array. A nil slice is written as [].
func Encode(campaigns []domain.Campaign) ([]byte, error) {
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return json.Marshal(campaigns)
}

// Decode parses a slot payload. Blank payloads decode to an empty list.
func Decode(data []byte) ([]domain.Campaign, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Campaign{}, nil
	}
	var campaigns []domain.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// DecodeOrEmpty is Decode for the read path of a backend: a corrupt payload
// is logged and treated as an empty slot instead of failing the caller.
func DecodeOrEmpty(ctx context.Context, logger *slog.Logger, name string, data []byte) []domain.Campaign {
	campaigns, err := Decode(data)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(ctx, "corrupt campaign slot, treating as empty",
			slog.String("slot", name),
			slog.Int("bytes", len(data)),
			slog.Any("error", err))
		return []domain.Campaign{}
	}
	return campaigns
}
