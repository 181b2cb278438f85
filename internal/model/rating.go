package model

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// MinRating and MaxRating bound the star value of a review.
const (
	MinRating = 1
	MaxRating = 5
)

// RatingSummary aggregates the reviews matching a product or a seller.
type RatingSummary struct {
	ReviewsCount  int             `json:"reviews_count"`
	RatingsCount  RatingHistogram `json:"ratings_count"`
	AverageRating float64         `json:"average_rating"`
}

// RatingHistogram counts reviews per star value. Every star from 1 to 5 is
// always present; it serialises as an object keyed "5" down to "1".
type RatingHistogram [MaxRating]int

// Count returns the number of reviews with the given star value.
func (h RatingHistogram) Count(star int) int {
	if star < MinRating || star > MaxRating {
		return 0
	}
	return h[star-1]
}

// Add records one review with the given star value. Out of range values are ignored.
func (h *RatingHistogram) Add(star int) {
	if star < MinRating || star > MaxRating {
		return
	}
	h[star-1]++
}

// Total returns the sum of all counts.
func (h RatingHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// MarshalJSON writes the histogram from 5 stars down to 1.
func (h RatingHistogram) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for star := MaxRating; star >= MinRating; star-- {
		if star != MaxRating {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(star))
		buf.WriteString(`":`)
		buf.WriteString(strconv.Itoa(h.Count(star)))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by star value.
func (h *RatingHistogram) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*h = RatingHistogram{}
	for key, n := range raw {
		star, err := strconv.Atoi(key)
		if err != nil || star < MinRating || star > MaxRating {
			return fmt.Errorf("invalid rating key %q", key)
		}
		h[star-1] = n
	}
	return nil
}
