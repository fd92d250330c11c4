package seed

import (
	_ "embed"
	"fmt"
	"time"

	models "tasklist/internal/domain/models/tasks"

	"gopkg.in/yaml.v3"
)

//go:embed data/demo.yaml
var demoFixture []byte

// Fixture is the on-disk shape of seed data
type Fixture struct {
	Lists []FixtureList `yaml:"lists"`
}

// FixtureList is one list and its items
type FixtureList struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Items       []FixtureItem `yaml:"items"`
}

// FixtureItem is one item. Status and priority are names such as "in_progress"
// or "high"; timestamps are offsets in days before the seeding time.
type FixtureItem struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Type             string `yaml:"type"`
	Status           string `yaml:"status"`
	Priority         string `yaml:"priority"`
	CreatedDaysAgo   int    `yaml:"created_days_ago"`
	CompletedDaysAgo *int   `yaml:"completed_days_ago"`
}

// DemoFixture returns the embedded demo data
func DemoFixture() (*Fixture, error) {
	return ParseFixture(demoFixture)
}

// ParseFixture decodes and checks a YAML fixture
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	for li, list := range f.Lists {
		if list.Title == "" {
			return nil, fmt.Errorf("fixture list %d: missing title", li)
		}
		for ii, item := range list.Items {
			if item.Title == "" {
				return nil, fmt.Errorf("fixture list %q item %d: missing title", list.Title, ii)
			}
			if _, ok := models.ParseStatus(item.Status); !ok && item.Status != "" {
				return nil, fmt.Errorf("fixture item %q: unknown status %q", item.Title, item.Status)
			}
			if _, ok := models.ParsePriority(item.Priority); !ok && item.Priority != "" {
				return nil, fmt.Errorf("fixture item %q: unknown priority %q", item.Title, item.Priority)
			}
		}
	}

	return &f, nil
}

// toItem materializes a fixture item relative to now. A Done item keeps its
// completion offset if it has one and otherwise completes when it was created.
// Items that are not Done never carry a completion time.
func (fi FixtureItem) toItem(listID int64, now time.Time) models.Item {
	status, _ := models.ParseStatus(fi.Status)
	priority, _ := models.ParsePriority(fi.Priority)

	created := now.AddDate(0, 0, -fi.CreatedDaysAgo)
	item := models.Item{
		ListID:      listID,
		Title:       fi.Title,
		Description: fi.Description,
		Type:        fi.Type,
		Status:      status,
		Priority:    priority,
		CreatedAt:   created,
	}

	if status == models.StatusDone {
		completed := created
		if fi.CompletedDaysAgo != nil {
			completed = now.AddDate(0, 0, -*fi.CompletedDaysAgo)
		}
		item.CompletedAt = &completed
	}
	return item
}
