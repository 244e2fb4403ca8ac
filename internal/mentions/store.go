package mentions

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/calloway/jukebook/internal/model"
)

// Load reads the full record set from the JSON data file. Record order
// in the file is the timeline order and is preserved.
func Load(path string) ([]*model.Mention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []*model.Mention
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return records, nil
}

// Save rewrites the full record set to the data file. The whole file is
// written every time, whether or not anything changed; a no-change save
// is an idempotent no-op on the content.
func Save(path string, records []*model.Mention) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
