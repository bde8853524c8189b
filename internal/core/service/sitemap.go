package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/thejurists/site-api/internal/core/domain"
)

type staticPage struct {
	path       string
	changeFreq string
	priority   float64
}

var staticPages = []staticPage{
	{"/", "weekly", 1.0},
	{"/about", "monthly", 0.8},
	{"/services", "monthly", 0.9},
	{"/blog", "daily", 0.8},
	{"/contact", "yearly", 0.7},
}

// GetSitemapEntries lists the static pages, one page per jurisdiction and
// practice area, and one page per blog article.
func (s *ContentService) GetSitemapEntries(ctx context.Context) ([]domain.SitemapEntry, error) {
	articles, err := s.repos.Blog.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}

	entries := make([]domain.SitemapEntry, 0, len(staticPages)+len(domain.Jurisdictions)+len(domain.PracticeAreas)+len(articles))
	for _, p := range staticPages {
		entries = append(entries, s.entry(p.path, p.changeFreq, p.priority))
	}
	for _, j := range domain.Jurisdictions {
		entries = append(entries, s.entry("/jurisdictions/"+strings.ToLower(string(j)), "monthly", 0.7))
	}
	for _, p := range domain.PracticeAreas {
		entries = append(entries, s.entry("/services/"+string(p), "monthly", 0.7))
	}
	for _, a := range articles {
		e := s.entry(fmt.Sprintf("/blog/%d", a.ID), "monthly", 0.6)
		published := a.PublishedDate
		e.LastMod = &published
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *ContentService) entry(path, changeFreq string, priority float64) domain.SitemapEntry {
	p := priority
	return domain.SitemapEntry{
		Loc:        s.siteURL + path,
		ChangeFreq: changeFreq,
		Priority:   &p,
	}
}
