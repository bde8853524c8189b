// Package seed loads the starting site content from a YAML catalogue.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the content loaded into empty stores at startup.
type Catalog struct {
	Services      []Service      `yaml:"services"`
	BlogArticles  []BlogArticle  `yaml:"blog_articles"`
	LegalListings []LegalListing `yaml:"legal_listings"`
}

type Service struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	PracticeArea string   `yaml:"practice_area"`
	Jurisdiction string   `yaml:"jurisdiction"`
	Keywords     []string `yaml:"keywords"`
}

type BlogArticle struct {
	Title         string    `yaml:"title"`
	Content       string    `yaml:"content"`
	Author        string    `yaml:"author"`
	Category      string    `yaml:"category"`
	PublishedDate time.Time `yaml:"published_date"`
}

type LegalListing struct {
	Name           string `yaml:"name"`
	Contact        string `yaml:"contact"`
	Jurisdiction   string `yaml:"jurisdiction"`
	Specialization string `yaml:"specialization"`
}

// Stores are the repositories the catalogue is written to.
type Stores struct {
	Services ports.ServiceRepository
	Blog     ports.BlogRepository
	Listings ports.LegalListingRepository
}

// Load reads the catalogue at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed catalogue: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a catalogue.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalogue: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for i, s := range c.Services {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("services[%d]: %w: title is required", i, domain.ErrInvalidInput)
		}
		if !domain.PracticeArea(s.PracticeArea).Valid() {
			return fmt.Errorf("services[%d]: %w: unknown practice area %q", i, domain.ErrInvalidInput, s.PracticeArea)
		}
		if !domain.Jurisdiction(s.Jurisdiction).Valid() {
			return fmt.Errorf("services[%d]: %w: unknown jurisdiction %q", i, domain.ErrInvalidInput, s.Jurisdiction)
		}
	}
	for i, a := range c.BlogArticles {
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("blog_articles[%d]: %w: title is required", i, domain.ErrInvalidInput)
		}
		if !domain.PracticeArea(a.Category).Valid() {
			return fmt.Errorf("blog_articles[%d]: %w: unknown category %q", i, domain.ErrInvalidInput, a.Category)
		}
	}
	for i, l := range c.LegalListings {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("legal_listings[%d]: %w: name is required", i, domain.ErrInvalidInput)
		}
		if !domain.Jurisdiction(l.Jurisdiction).Valid() {
			return fmt.Errorf("legal_listings[%d]: %w: unknown jurisdiction %q", i, domain.ErrInvalidInput, l.Jurisdiction)
		}
		if !domain.PracticeArea(l.Specialization).Valid() {
			return fmt.Errorf("legal_listings[%d]: %w: unknown specialization %q", i, domain.ErrInvalidInput, l.Specialization)
		}
	}
	return nil
}

// Apply writes each section of the catalogue to its store, skipping stores
// that already hold records. It is safe to run on every start.
func Apply(ctx context.Context, c *Catalog, s Stores, log zerolog.Logger) error {
	services, err := s.Services.List(ctx, ports.ServiceFilter{})
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if len(services) == 0 {
		for _, svc := range c.Services {
			row := &domain.ServiceDetails{
				Title:        svc.Title,
				Description:  strings.TrimSpace(svc.Description),
				PracticeArea: domain.PracticeArea(svc.PracticeArea),
				Jurisdiction: domain.Jurisdiction(svc.Jurisdiction),
				Keywords:     svc.Keywords,
			}
			if _, err := s.Services.Create(ctx, row); err != nil {
				return fmt.Errorf("seed service %q: %w", svc.Title, err)
			}
		}
		log.Info().Int("count", len(c.Services)).Msg("seeded services")
	}

	articles, err := s.Blog.List(ctx, "")
	if err != nil {
		return fmt.Errorf("seed blog: %w", err)
	}
	if len(articles) == 0 {
		for _, a := range c.BlogArticles {
			row := &domain.BlogArticle{
				Title:         a.Title,
				Content:       strings.TrimSpace(a.Content),
				Author:        a.Author,
				Category:      domain.PracticeArea(a.Category),
				PublishedDate: a.PublishedDate.UTC(),
			}
			if _, err := s.Blog.Upsert(ctx, row); err != nil {
				return fmt.Errorf("seed blog article %q: %w", a.Title, err)
			}
		}
		log.Info().Int("count", len(c.BlogArticles)).Msg("seeded blog articles")
	}

	listings, err := s.Listings.List(ctx, ports.LegalListingFilter{})
	if err != nil {
		return fmt.Errorf("seed legal listings: %w", err)
	}
	if len(listings) == 0 {
		for _, l := range c.LegalListings {
			row := &domain.LegalListing{
				Name:           l.Name,
				Contact:        l.Contact,
				Jurisdiction:   domain.Jurisdiction(l.Jurisdiction),
				Specialization: domain.PracticeArea(l.Specialization),
			}
			if _, err := s.Listings.Create(ctx, row); err != nil {
				return fmt.Errorf("seed legal listing %q: %w", l.Name, err)
			}
		}
		log.Info().Int("count", len(c.LegalListings)).Msg("seeded legal listings")
	}

	return nil
}
