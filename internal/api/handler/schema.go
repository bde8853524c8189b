package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Access control ---

type initializedResponse struct {
	Initialized bool `json:"initialized"`
}

type adminResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type roleResponse struct {
	Role string `json:"role"`
}

// Admin payloads are checked by the services after the caller is authorized.

type assignRoleRequest struct {
	Role string `json:"role"`
}

// --- Profiles ---

type profileRequest struct {
	Name  string  `json:"name"  validate:"required,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type profileResponse struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// --- Leads ---

type createSubmissionRequest struct {
	Name         string  `json:"name"         validate:"required,max=120"`
	Email        string  `json:"email"        validate:"required,email"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=32"`
	Jurisdiction string  `json:"jurisdiction" validate:"required,jurisdiction"`
	Message      *string `json:"message"      validate:"omitempty,max=4000"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// idResponse is returned by every create operation.
type idResponse struct {
	ID uint64 `json:"id"`
}

// --- Content ---

type blogArticleRequest struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date"`
}

type trendingTopicRequest struct {
	Title           string   `json:"title"`
	Keywords        []string `json:"keywords"`
	PopularityScore uint64   `json:"popularity_score"`
	PracticeArea    string   `json:"practice_area"`
	TrendRelevance  string   `json:"trend_relevance"`
}

type legalListingRequest struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Jurisdiction   string `json:"jurisdiction"`
	Specialization string `json:"specialization"`
}
