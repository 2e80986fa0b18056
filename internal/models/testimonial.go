package models

import "time"

// Testimonial is mentee-authored rating and text feedback about a mentor.
// Only approved testimonials are listed and aggregated.
type Testimonial struct {
	ID         string    `json:"id"`
	MentorID   string    `json:"mentorId"`
	MenteeID   string    `json:"menteeId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	Featured   bool      `json:"featured"`
	Approved   bool      `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TestimonialStats holds aggregate rating statistics for one mentor.
// A mentor with zero testimonials yields all-zero stats, not an error.
type TestimonialStats struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
	Rating1       int     `json:"rating1"`
	Rating2       int     `json:"rating2"`
	Rating3       int     `json:"rating3"`
	Rating4       int     `json:"rating4"`
	Rating5       int     `json:"rating5"`
}

// TestimonialPage is one page of testimonials for incremental loading
type TestimonialPage struct {
	Testimonials []*Testimonial `json:"testimonials"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
	HasMore      bool           `json:"hasMore"`
}

// SubmitTestimonialRequest is the payload for creating a testimonial
type SubmitTestimonialRequest struct {
	Text   string `json:"text" binding:"required,min=10,max=2000"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

// CanWriteTestimonialResponse reports whether the mentee may review the mentor
type CanWriteTestimonialResponse struct {
	CanWrite bool   `json:"canWrite"`
	Reason   string `json:"reason,omitempty"`
}
