// Package catalog holds the static EigenBench snapshot and battle transcript
// that every view renders. The data is decoded once and never mutated.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type Row struct {
	Model  string `yaml:"model" json:"model"`
	Survey string `yaml:"survey" json:"survey"`
	Elo    int    `yaml:"elo" json:"elo"`
}

type Category struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Rows        []Row  `yaml:"rows" json:"rows"`
}

type Response struct {
	Label   string `yaml:"label" json:"label"`
	Model   string `yaml:"model" json:"model"`
	Tone    string `yaml:"tone" json:"tone"`
	Content string `yaml:"content" json:"content"`
}

type RatingChoice struct {
	Label string `yaml:"label" json:"label"`
	Hint  string `yaml:"hint" json:"hint"`
}

// Link is a navigation destination or a recent thread.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Battle struct {
	Lens                string         `yaml:"lens" json:"lens"`
	Prompt              string         `yaml:"prompt" json:"prompt"`
	Badges              []string       `yaml:"badges" json:"badges"`
	FollowUpPlaceholder string         `yaml:"follow_up_placeholder" json:"followUpPlaceholder"`
	Responses           []Response     `yaml:"responses" json:"responses"`
	RatingChoices       []RatingChoice `yaml:"rating_choices" json:"ratingChoices"`
}

type Site struct {
	Name          string `yaml:"name" json:"name"`
	Tagline       string `yaml:"tagline" json:"tagline"`
	PaperURL      string `yaml:"paper_url" json:"paperUrl"`
	Navigation    []Link `yaml:"navigation" json:"navigation"`
	RecentThreads []Link `yaml:"recent_threads" json:"recentThreads"`
}

type Catalog struct {
	Site        Site       `yaml:"site" json:"site"`
	Leaderboard []Category `yaml:"leaderboard" json:"leaderboard"`
	Battle      Battle     `yaml:"battle" json:"battle"`
}

var (
	ErrNoCategories  = errors.New("catalog has no leaderboard categories")
	ErrResponseCount = errors.New("battle must have exactly two responses")
	ErrChoiceCount   = errors.New("battle must have exactly four rating choices")
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embedded))
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if len(c.Leaderboard) == 0 {
		return nil, ErrNoCategories
	}
	if len(c.Battle.Responses) != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrResponseCount, len(c.Battle.Responses))
	}
	if len(c.Battle.RatingChoices) != 4 {
		return nil, fmt.Errorf("%w, got %d", ErrChoiceCount, len(c.Battle.RatingChoices))
	}
	return &c, nil
}
