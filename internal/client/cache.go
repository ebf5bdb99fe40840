package client

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/ZEBDA1/McHess/internal/model"
)

// OrderCache is the local order ledger a customer keeps for self-service
// lookup. It is not authoritative: records capture status at creation time
// and are never synced with the server, and nothing read from here is ever
// written back to the ledger.
type OrderCache struct {
	mu      sync.Mutex
	path    string
	records []model.LocalOrderRecord
}

// NewOrderCache loads the ledger at path. A missing file means an empty
// ledger, any other read failure is surfaced.
func NewOrderCache(path string) (*OrderCache, error) {
	c := &OrderCache{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(raw, &c.records)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Append stores a new record. It must only be called after the server
// confirmed the order, so a failed creation never leaves a phantom entry.
func (c *OrderCache) Append(r model.LocalOrderRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, r)
	return c.save()
}

// FindByEmail returns the cached records for an email. Informational only;
// statuses may be stale.
func (c *OrderCache) FindByEmail(email string) []model.LocalOrderRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	var found []model.LocalOrderRecord
	for _, r := range c.records {
		if r.Email == email {
			found = append(found, r)
		}
	}
	return found
}

func (c *OrderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func (c *OrderCache) save() error {
	raw, err := json.Marshal(c.records)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, raw, 0o600)
}
