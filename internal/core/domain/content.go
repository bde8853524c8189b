package domain

import "time"

// BlogArticle is a published article on the firm's blog.
type BlogArticle struct {
	ID            uint64       `json:"id" bson:"_id"`
	Title         string       `json:"title" bson:"title"`
	Content       string       `json:"content" bson:"content"`
	Author        string       `json:"author" bson:"author"`
	Category      PracticeArea `json:"category" bson:"category"`
	PublishedDate time.Time    `json:"published_date" bson:"published_date"`
}

// ServiceDetails describes a service the firm offers in one jurisdiction.
type ServiceDetails struct {
	ID           uint64       `json:"id" bson:"_id"`
	Title        string       `json:"title" bson:"title"`
	Description  string       `json:"description" bson:"description"`
	PracticeArea PracticeArea `json:"practice_area" bson:"practice_area"`
	Jurisdiction Jurisdiction `json:"jurisdiction" bson:"jurisdiction"`
	Keywords     []string     `json:"keywords" bson:"keywords"`
}

// TrendingTopic is a candidate subject for a blog post.
type TrendingTopic struct {
	ID              uint64         `json:"id" bson:"_id"`
	Title           string         `json:"title" bson:"title"`
	Keywords        []string       `json:"keywords" bson:"keywords"`
	PopularityScore uint64         `json:"popularity_score" bson:"popularity_score"`
	PracticeArea    PracticeArea   `json:"practice_area" bson:"practice_area"`
	TrendRelevance  TrendRelevance `json:"trend_relevance" bson:"trend_relevance"`
	IsPosted        bool           `json:"is_posted" bson:"is_posted"`
	Timestamp       time.Time      `json:"timestamp" bson:"timestamp"`
}

// LegalListing is an entry in the public legal directory.
type LegalListing struct {
	ID             uint64       `json:"id" bson:"_id"`
	Name           string       `json:"name" bson:"name"`
	Contact        string       `json:"contact" bson:"contact"`
	Jurisdiction   Jurisdiction `json:"jurisdiction" bson:"jurisdiction"`
	Specialization PracticeArea `json:"specialization" bson:"specialization"`
}

// SitemapEntry is one URL advertised to search engines.
type SitemapEntry struct {
	Loc        string     `json:"loc"`
	ChangeFreq string     `json:"change_freq,omitempty"`
	Priority   *float64   `json:"priority,omitempty"`
	LastMod    *time.Time `json:"last_mod,omitempty"`
}
