package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1704888000000)

	tests := []struct {
		name     string
		baseName string
		origName string
		expected string
	}{
		{
			name:     "jpg extension kept",
			baseName: "board-announces-exam-dates",
			origName: "photo.jpg",
			expected: "board-announces-exam-dates-1704888000000.jpg",
		},
		{
			name:     "extension lowercased",
			baseName: "class-12-results",
			origName: "Screenshot.PNG",
			expected: "class-12-results-1704888000000.png",
		},
		{
			name:     "no extension",
			baseName: "admission-circular",
			origName: "upload",
			expected: "admission-circular-1704888000000",
		},
		{
			name:     "only last extension kept",
			baseName: "fee-structure",
			origName: "scan.final.webp",
			expected: "fee-structure-1704888000000.webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, objectKey(tt.baseName, tt.origName, now))
		})
	}
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "cdn url",
			url:      "https://assets.example.org/news-images/board-meeting-1704888000000.jpg",
			expected: "board-meeting-1704888000000.jpg",
		},
		{
			name:     "virtual-hosted s3 url",
			url:      "https://news-images.s3.ap-south-1.amazonaws.com/datesheet-1704801600000.png",
			expected: "datesheet-1704801600000.png",
		},
		{
			name:     "query string ignored",
			url:      "https://assets.example.org/results-screenshot.png?v=2",
			expected: "results-screenshot.png",
		},
		{
			name:     "bare key",
			url:      "results-screenshot.png",
			expected: "results-screenshot.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyFromURL(tt.url))
		})
	}
}

func TestNewBucket_Validation(t *testing.T) {
	t.Run("RejectsIncompleteConfig", func(t *testing.T) {
		_, err := NewBucket(Options{Bucket: "news-images"})
		assert.Error(t, err)
	})

	t.Run("AcceptsCompleteConfig", func(t *testing.T) {
		b, err := NewBucket(Options{
			Bucket:          "news-images",
			Region:          "ap-south-1",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			PublicBaseURL:   "https://assets.example.org/",
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://assets.example.org", b.baseURL)
	})
}

func TestBucket_PublicURL(t *testing.T) {
	t.Run("CustomBaseURL", func(t *testing.T) {
		b := &Bucket{bucket: "news-images", region: "ap-south-1", baseURL: "https://assets.example.org"}
		assert.Equal(t, "https://assets.example.org/key.jpg", b.publicURL("key.jpg"))
	})

	t.Run("DefaultAmazonURL", func(t *testing.T) {
		b := &Bucket{bucket: "news-images", region: "ap-south-1"}
		assert.Equal(t, "https://news-images.s3.ap-south-1.amazonaws.com/key.jpg", b.publicURL("key.jpg"))
	})
}
