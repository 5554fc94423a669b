package challenge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Catalog is the read-only challenge set served to learners. It is loaded
// once at startup; lookups after that are lock-free.
type Catalog struct {
	byID  map[string]Challenge
	order []string
}

var validate = validator.New()

// LoadCatalog reads and validates a JSON challenge file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []Challenge
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(items)
}

// NewCatalog validates the entries and indexes them by id.
func NewCatalog(items []Challenge) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Challenge, len(items))}
	for i, ch := range items {
		if err := validate.Struct(ch); err != nil {
			return nil, fmt.Errorf("challenge %d (%s): %w", i, ch.ID, err)
		}
		if _, dup := c.byID[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate challenge id %q", ch.ID)
		}
		c.byID[ch.ID] = ch
		c.order = append(c.order, ch.ID)
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Challenge, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// List returns challenges in file order, filtered by task type when given.
func (c *Catalog) List(taskType string) []Challenge {
	out := make([]Challenge, 0, len(c.order))
	for _, id := range c.order {
		ch := c.byID[id]
		if taskType != "" && ch.TaskType != taskType {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// TaskTypes reports the distinct task types present, sorted.
func (c *Catalog) TaskTypes() []string {
	seen := map[string]struct{}{}
	for _, ch := range c.byID {
		seen[ch.TaskType] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int { return len(c.order) }
