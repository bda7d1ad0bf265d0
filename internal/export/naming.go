package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename returns the download name for a campaign export,
// e.g. "Spring Sale!" -> "Spring_Sale__GoogleAds.csv".
func Filename(c *campaign.Campaign) string {
	return unsafeFilenameChars.ReplaceAllString(c.Name, "_") + "_GoogleAds.csv"
}

// Fingerprint returns a stable hex SHA-256 of the campaign's JSON form.
// Two campaigns with the same fingerprint render to identical bytes.
func Fingerprint(c *campaign.Campaign) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("fingerprint campaign: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
