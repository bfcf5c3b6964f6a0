package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

type FrontMatter struct {
	Title string   `yaml:"title"`
	Date  YamlDate `yaml:"date,omitempty"`
	GUID  string   `yaml:"guid,omitempty"`
}

// populateFromFrontMatter copies the front matter collected by goldmark-meta into doc.
// A document without a guid gets a random one.
func populateFromFrontMatter(doc *Document, m map[string]interface{}) error {
	fm, err := decodeFrontMatter(m)
	if err != nil {
		return err
	}

	doc.Title = strings.TrimSpace(fm.Title)
	doc.Date = time.Time(fm.Date)

	guidProvided := false
	if fm.GUID != "" {
		doc.GUID, err = uuid.Parse(fm.GUID)
		if err != nil {
			return fmt.Errorf("could not parse guid: %w", err)
		}
		guidProvided = true
	}

	if !guidProvided {
		doc.GUID = uuid.New()
	}

	return nil
}

func decodeFrontMatter(m map[string]interface{}) (FrontMatter, error) {
	fm := FrontMatter{}
	if len(m) == 0 {
		return fm, nil
	}

	raw, err := yaml.Marshal(m)
	if err != nil {
		return fm, fmt.Errorf("encode YAML: %w", err)
	}

	err = yaml.Unmarshal(raw, &fm)
	if err != nil {
		return fm, fmt.Errorf("parse YAML: %w", err)
	}

	return fm, nil
}

type YamlDate time.Time

func (t *YamlDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var txt string
	err := unmarshal(&txt)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", txt)
	if err != nil {
		return err
	}

	*t = YamlDate(date)
	return nil
}

func (t YamlDate) MarshalYAML() (interface{}, error) {
	ret := time.Time(t).Format("2006-01-02")
	return ret, nil
}
