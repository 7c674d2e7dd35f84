package newssite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		name     string
		news     News
		expected Layout
	}{
		{
			name: "pdf source link wins",
			news: News{
				Title:      "Exam Date Sheet Released",
				SourceLink: strPtr("https://www.example.gov.in/circulars/datesheet.pdf"),
				Category:   CategoryNews,
			},
			expected: LayoutDocument,
		},
		{
			name: "pdf suffix is case-insensitive",
			news: News{
				Title:      "Syllabus Update",
				SourceLink: strPtr("https://files.example.org/syllabus.PDF"),
				Category:   CategoryNews,
			},
			expected: LayoutDocument,
		},
		{
			name: "pdf beats notice category",
			news: News{
				Title:      "Admission Notice",
				SourceLink: strPtr("https://files.example.org/admission.pdf"),
				Category:   CategoryNotice,
			},
			expected: LayoutDocument,
		},
		{
			name: "non-pdf source link does not trigger document",
			news: News{
				Title:      "Results Portal Live",
				SourceLink: strPtr("https://results.example.org/check"),
				Category:   CategoryResults,
			},
			expected: LayoutNews,
		},
		{
			name: "screenshot image url",
			news: News{
				Title:    "Class 12 Results Declared",
				ImageURL: strPtr("https://cdn.example.org/images/results-screenshot-1704801600000.png"),
				Category: CategoryResults,
			},
			expected: LayoutDocument,
		},
		{
			name: "portrait image url",
			news: News{
				Title:    "Merit List",
				ImageURL: strPtr("https://cdn.example.org/images/merit-list-portrait.jpg"),
				Category: CategoryNews,
			},
			expected: LayoutDocument,
		},
		{
			name: "mobile keyword in image url",
			news: News{
				Title:    "Timetable",
				ImageURL: strPtr("https://cdn.example.org/Mobile-capture.png"),
				Category: CategoryNews,
			},
			expected: LayoutDocument,
		},
		{
			name: "plain image url stays news",
			news: News{
				Title:    "Board Announces Exam Dates",
				ImageURL: strPtr("https://cdn.example.org/images/board-meeting.jpg"),
				Category: CategoryNews,
			},
			expected: LayoutNews,
		},
		{
			name: "notice category",
			news: News{
				Title:    "Admission Window Extended",
				Category: CategoryNotice,
			},
			expected: LayoutNotice,
		},
		{
			name: "screenshot image beats notice category",
			news: News{
				Title:    "Fee Structure",
				ImageURL: strPtr("https://cdn.example.org/fee-screen-capture.png"),
				Category: CategoryNotice,
			},
			expected: LayoutDocument,
		},
		{
			name: "circular keyword in title",
			news: News{
				Title:    "New Circular on School Timings",
				Category: CategoryNews,
			},
			expected: LayoutNotice,
		},
		{
			name: "advisory keyword is case-insensitive",
			news: News{
				Title:    "Weather ADVISORY for Exam Day",
				Category: CategoryNews,
			},
			expected: LayoutNotice,
		},
		{
			name: "notification keyword in results category",
			news: News{
				Title:    "Notification: Revaluation Window Opens",
				Category: CategoryResults,
			},
			expected: LayoutNotice,
		},
		{
			name: "plain news article",
			news: News{
				Title:    "School Wins National Science Fair",
				Category: CategoryNews,
			},
			expected: LayoutNews,
		},
		{
			name: "plain results article",
			news: News{
				Title:    "Class 10 Results Declared",
				Category: CategoryResults,
			},
			expected: LayoutNews,
		},
		{
			name:     "empty article defaults to news",
			news:     News{},
			expected: LayoutNews,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLayout(tt.news))
		})
	}
}
