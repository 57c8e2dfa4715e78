// Package catalog holds the static content the coaching screens render:
// categories, coaching modes, canned replies, premium plans and the sample
// progress data. The content ships embedded as YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// ErrUnknownCategory is returned when a category query matches nothing.
var ErrUnknownCategory = errors.New("unknown category")

type Catalog struct {
	Welcome        Welcome       `yaml:"welcome"`
	Categories     []Category    `yaml:"categories"`
	Modes          []Mode        `yaml:"modes"`
	DefaultMode    string        `yaml:"default_mode"`
	QuickActions   []QuickAction `yaml:"quick_actions"`
	Greeting       string        `yaml:"greeting"`
	Replies        []string      `yaml:"replies"`
	Premium        Premium       `yaml:"premium"`
	SampleProgress Sample        `yaml:"sample_progress"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Highlight   bool   `yaml:"highlight"`
}

type Welcome struct {
	Headline string    `yaml:"headline"`
	Tagline  string    `yaml:"tagline"`
	Footnote string    `yaml:"footnote"`
	Features []Feature `yaml:"features"`
}

type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Mode struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type QuickAction struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

type Plan struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Period   string `yaml:"period"`
	Popular  bool   `yaml:"popular"`
	Discount string `yaml:"discount"`
}

type CTA struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Button string `yaml:"button"`
	Note   string `yaml:"note"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

type Premium struct {
	Headline    string      `yaml:"headline"`
	Tagline     string      `yaml:"tagline"`
	Features    []Feature   `yaml:"features"`
	Plans       []Plan      `yaml:"plans"`
	CTA         CTA         `yaml:"cta"`
	Testimonial Testimonial `yaml:"testimonial"`
}

type Amount struct {
	Current int `yaml:"current"`
	Target  int `yaml:"target"`
}

type DaySteps struct {
	Day   string `yaml:"day"`
	Steps int    `yaml:"steps"`
}

// Sample is the hardcoded progress snapshot used to seed storage and as the
// dashboard fallback when no store is configured.
type Sample struct {
	Steps            Amount     `yaml:"steps"`
	Calories         Amount     `yaml:"calories"`
	Water            Amount     `yaml:"water"`
	Streak           int        `yaml:"streak"`
	WeeklyGoals      int        `yaml:"weekly_goals"`
	WeeklyGoalTarget int        `yaml:"weekly_goal_target"`
	ActiveMinutes    int        `yaml:"active_minutes"`
	Week             []DaySteps `yaml:"week"`
}

// Parse decodes catalog YAML and checks the invariants the screens rely on.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("parse catalog: no categories")
	}
	if len(c.Modes) == 0 {
		return nil, fmt.Errorf("parse catalog: no modes")
	}
	if len(c.Replies) == 0 {
		return nil, fmt.Errorf("parse catalog: no replies")
	}
	if _, ok := c.Mode(c.DefaultMode); !ok {
		return nil, fmt.Errorf("parse catalog: default mode %q not defined", c.DefaultMode)
	}
	return &c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(embedded)
	})
	return defaultCat, defaultErr
}

// MustDefault is Default for callers that treat a broken embedded catalog as
// a programming error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Catalog) Mode(id string) (Mode, bool) {
	for _, m := range c.Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// GreetingFor renders the bot's opening line for a conversation name.
func (c *Catalog) GreetingFor(name string) string {
	return fmt.Sprintf(c.Greeting, strings.ToLower(name))
}

// maxCategoryDistance bounds how sloppy a typed category may be.
const maxCategoryDistance = 3

// ResolveCategory maps user input (an id, a label or a near miss of either)
// to a category. Exact and prefix matches win; otherwise the closest id or
// label by edit distance within maxCategoryDistance.
func (c *Catalog) ResolveCategory(query string) (Category, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Category{}, fmt.Errorf("resolve %q: %w", query, ErrUnknownCategory)
	}
	for _, cat := range c.Categories {
		if q == cat.ID || q == strings.ToLower(cat.Label) {
			return cat, nil
		}
	}
	for _, cat := range c.Categories {
		if strings.HasPrefix(cat.ID, q) || strings.HasPrefix(strings.ToLower(cat.Label), q) {
			return cat, nil
		}
	}
	best, bestDist := Category{}, maxCategoryDistance+1
	for _, cat := range c.Categories {
		for _, candidate := range []string{cat.ID, strings.ToLower(cat.Label)} {
			if d := levenshtein.ComputeDistance(q, candidate); d < bestDist {
				best, bestDist = cat, d
			}
		}
	}
	if bestDist > maxCategoryDistance {
		return Category{}, fmt.Errorf("resolve %q: %w", query, ErrUnknownCategory)
	}
	return best, nil
}
