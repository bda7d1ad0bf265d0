package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
)

// ErrEmptyBody is returned when there is no campaign to decode.
var ErrEmptyBody = errors.New("empty request body")

// ErrUnsupportedFormat is returned for campaign files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DecodeCampaign decodes a canonical campaign from JSON.
func DecodeCampaign(data []byte) (*campaign.Campaign, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyBody
	}

	var c campaign.Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode campaign: %w", err)
	}
	return &c, nil
}

// DecodeCampaignYAML decodes a canonical campaign from YAML.
func DecodeCampaignYAML(data []byte) (*campaign.Campaign, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyBody
	}

	var c campaign.Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("read campaign file: %w", err)
	}
	return &c, nil
}

// DecodeCampaignFile picks the decoder from the file extension.
func DecodeCampaignFile(name string, data []byte) (*campaign.Campaign, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeCampaign(data)
	case ".yaml", ".yml":
		return DecodeCampaignYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
}
