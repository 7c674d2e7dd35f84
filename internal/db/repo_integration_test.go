package db

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database
	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func testNewsRow(title string) *News {
	return &News{
		ID:               uuid.NewString(),
		Title:            title,
		Slug:             strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		ShortDescription: "Short description for " + title,
		Content:          "Content for " + title,
		Category:         "News",
		Status:           StatusDraft,
	}
}

func TestRepository_PublishedNews_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ReturnsOnlyPublishedSortedByPublishedAtDesc", func(t *testing.T) {
		news, err := repo.PublishedNews(ctx, 0)
		if err != nil {
			t.Fatalf("PublishedNews: %v", err)
		}
		if len(news) != 3 {
			t.Fatalf("expected 3 published items, got %d", len(news))
		}
		for i, item := range news {
			if item.Status != StatusPublished {
				t.Errorf("news[%d] has status %q", i, item.Status)
			}
			if item.PublishedAt == nil {
				t.Errorf("news[%d] has nil published_at", i)
			}
		}
		for i := 0; i < len(news)-1; i++ {
			if news[i].PublishedAt.Before(*news[i+1].PublishedAt) {
				t.Fatalf("news not sorted by published_at desc at %d", i)
			}
		}
	})

	t.Run("LimitCapsResult", func(t *testing.T) {
		news, err := repo.PublishedNews(ctx, 2)
		if err != nil {
			t.Fatalf("PublishedNews: %v", err)
		}
		if len(news) != 2 {
			t.Fatalf("expected 2 items with limit 2, got %d", len(news))
		}
	})
}

func TestRepository_PublishedNewsPaginated_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("PagesAreDisjoint", func(t *testing.T) {
		page1, err := repo.PublishedNewsPaginated(ctx, 1, 2)
		if err != nil {
			t.Fatalf("PublishedNewsPaginated page1: %v", err)
		}
		if len(page1) != 2 {
			t.Fatalf("expected 2 items on page1, got %d", len(page1))
		}

		page2, err := repo.PublishedNewsPaginated(ctx, 2, 2)
		if err != nil {
			t.Fatalf("PublishedNewsPaginated page2: %v", err)
		}
		if len(page2) != 1 {
			t.Fatalf("expected 1 item on page2, got %d", len(page2))
		}

		seen := make(map[string]struct{}, 2)
		for _, n := range page1 {
			seen[n.ID] = struct{}{}
		}
		for _, n := range page2 {
			if _, ok := seen[n.ID]; ok {
				t.Fatalf("news %s appears on both pages", n.ID)
			}
		}
	})

	t.Run("PageBeyondDataIsEmpty", func(t *testing.T) {
		news, err := repo.PublishedNewsPaginated(ctx, 10, 2)
		if err != nil {
			t.Fatalf("PublishedNewsPaginated: %v", err)
		}
		if len(news) != 0 {
			t.Fatalf("expected empty page, got %d items", len(news))
		}
	})

	t.Run("RejectsInvalidPageArguments", func(t *testing.T) {
		if _, err := repo.PublishedNewsPaginated(ctx, 0, 10); err == nil {
			t.Error("expected error for page 0")
		}
		if _, err := repo.PublishedNewsPaginated(ctx, 1, 0); err == nil {
			t.Error("expected error for pageSize 0")
		}
	})
}

func TestRepository_PublishedNewsCount_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	count, err := repo.PublishedNewsCount(ctx)
	if err != nil {
		t.Fatalf("PublishedNewsCount: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 published items, got %d", count)
	}
}

func TestRepository_NewsBySlug_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("FindsPublishedNews", func(t *testing.T) {
		news, err := repo.NewsBySlug(ctx, "board-announces-class-10-exam-dates")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if news == nil {
			t.Fatal("expected news, got nil")
		}
		if news.Title != "Board Announces Class 10 Exam Dates" {
			t.Errorf("unexpected title %q", news.Title)
		}
		if news.Content == "" {
			t.Error("expected content to be loaded")
		}
	})

	t.Run("DraftSlugIsInvisible", func(t *testing.T) {
		news, err := repo.NewsBySlug(ctx, "draft-upcoming-scholarship-scheme")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if news != nil {
			t.Fatalf("expected nil for a draft slug, got %+v", news)
		}
	})

	t.Run("UnknownSlugReturnsNil", func(t *testing.T) {
		news, err := repo.NewsBySlug(ctx, "no-such-slug")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if news != nil {
			t.Fatalf("expected nil, got %+v", news)
		}
	})
}

func TestRepository_NewsByCategory_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("FiltersPublishedByCategory", func(t *testing.T) {
		news, err := repo.NewsByCategory(ctx, "Notice")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		if len(news) != 1 {
			t.Fatalf("expected 1 notice, got %d", len(news))
		}
		if news[0].Category != "Notice" {
			t.Errorf("expected category Notice, got %q", news[0].Category)
		}
	})

	t.Run("DraftsStayHidden", func(t *testing.T) {
		// the seeded draft is in the News category
		news, err := repo.NewsByCategory(ctx, "News")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		if len(news) != 1 {
			t.Fatalf("expected 1 published News item, got %d", len(news))
		}
	})
}

func TestRepository_NewsByID_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("FindsDraftToo", func(t *testing.T) {
		news, err := repo.NewsByID(ctx, "44444444-4444-4444-8444-444444444444")
		if err != nil {
			t.Fatalf("NewsByID: %v", err)
		}
		if news == nil {
			t.Fatal("expected the draft to be visible by id")
		}
		if news.Status != StatusDraft {
			t.Errorf("expected draft status, got %q", news.Status)
		}
	})

	t.Run("UnknownIDReturnsNil", func(t *testing.T) {
		news, err := repo.NewsByID(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("NewsByID: %v", err)
		}
		if news != nil {
			t.Fatalf("expected nil, got %+v", news)
		}
	})
}

func TestRepository_AllNews_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	news, err := repo.AllNews(ctx)
	if err != nil {
		t.Fatalf("AllNews: %v", err)
	}
	if len(news) != 4 {
		t.Fatalf("expected 4 items including the draft, got %d", len(news))
	}
	// NULLS FIRST puts the unpublished draft on top
	if news[0].Status != StatusDraft {
		t.Errorf("expected the draft first, got status %q", news[0].Status)
	}
}

func TestRepository_SearchNews_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("MatchesTitleCaseInsensitive", func(t *testing.T) {
		news, err := repo.SearchNews(ctx, "CIRCULAR", 10)
		if err != nil {
			t.Fatalf("SearchNews: %v", err)
		}
		if len(news) != 1 {
			t.Fatalf("expected 1 match, got %d", len(news))
		}
		if news[0].Slug != "admission-circular-for-the-new-session" {
			t.Errorf("unexpected match %q", news[0].Slug)
		}
	})

	t.Run("MatchesContent", func(t *testing.T) {
		news, err := repo.SearchNews(ctx, "official portal", 10)
		if err != nil {
			t.Fatalf("SearchNews: %v", err)
		}
		if len(news) != 1 {
			t.Fatalf("expected 1 match, got %d", len(news))
		}
	})

	t.Run("DraftsNeverMatch", func(t *testing.T) {
		news, err := repo.SearchNews(ctx, "scholarship", 10)
		if err != nil {
			t.Fatalf("SearchNews: %v", err)
		}
		if len(news) != 0 {
			t.Fatalf("expected no matches in drafts, got %d", len(news))
		}
	})

	t.Run("LimitCapsResult", func(t *testing.T) {
		news, err := repo.SearchNews(ctx, "e", 2)
		if err != nil {
			t.Fatalf("SearchNews: %v", err)
		}
		if len(news) > 2 {
			t.Fatalf("expected at most 2 matches, got %d", len(news))
		}
	})
}

func TestRepository_InsertUpdateDelete_Integration(t *testing.T) {
	// A unique violation aborts the surrounding transaction, so every
	// subtest runs in its own.
	t.Run("InsertReturnsRowWithDefaults", func(t *testing.T) {
		ctx, repo := withTx(t)
		row := testNewsRow("Sports Day Postponed")
		created, err := repo.InsertNews(ctx, row)
		if err != nil {
			t.Fatalf("InsertNews: %v", err)
		}
		if created.ID != row.ID {
			t.Errorf("expected id %s, got %s", row.ID, created.ID)
		}

		found, err := repo.NewsByID(ctx, row.ID)
		if err != nil {
			t.Fatalf("NewsByID: %v", err)
		}
		if found == nil {
			t.Fatal("inserted row not found")
		}
	})

	t.Run("DuplicateSlugIsRejected", func(t *testing.T) {
		ctx, repo := withTx(t)
		row := testNewsRow("Duplicate Slug Probe")
		row.Slug = "board-announces-class-10-exam-dates"
		_, err := repo.InsertNews(ctx, row)
		if err == nil {
			t.Fatal("expected unique violation for duplicate slug")
		}
	})

	t.Run("UpdateBumpsUpdatedAt", func(t *testing.T) {
		ctx, repo := withTx(t)
		row := testNewsRow("Library Timings Revised")
		if _, err := repo.InsertNews(ctx, row); err != nil {
			t.Fatalf("InsertNews: %v", err)
		}

		before := row.UpdatedAt
		row.Title = "Library Timings Revised Again"
		updated, err := repo.UpdateNews(ctx, row)
		if err != nil {
			t.Fatalf("UpdateNews: %v", err)
		}
		if updated == nil {
			t.Fatal("expected updated row, got nil")
		}
		if !updated.UpdatedAt.After(before) {
			t.Error("expected updated_at to move forward")
		}
		if updated.Title != "Library Timings Revised Again" {
			t.Errorf("unexpected title %q", updated.Title)
		}
	})

	t.Run("UpdateUnknownIDReturnsNil", func(t *testing.T) {
		ctx, repo := withTx(t)
		row := testNewsRow("Ghost Article")
		updated, err := repo.UpdateNews(ctx, row)
		if err != nil {
			t.Fatalf("UpdateNews: %v", err)
		}
		if updated != nil {
			t.Fatalf("expected nil for unknown id, got %+v", updated)
		}
	})

	t.Run("DeleteRemovesRow", func(t *testing.T) {
		ctx, repo := withTx(t)
		row := testNewsRow("Article To Delete")
		if _, err := repo.InsertNews(ctx, row); err != nil {
			t.Fatalf("InsertNews: %v", err)
		}

		if err := repo.DeleteNews(ctx, row.ID); err != nil {
			t.Fatalf("DeleteNews: %v", err)
		}

		found, err := repo.NewsByID(ctx, row.ID)
		if err != nil {
			t.Fatalf("NewsByID: %v", err)
		}
		if found != nil {
			t.Fatal("expected the row to be gone")
		}
	})
}

func TestLoadTestData_BaseTimes(t *testing.T) {
	ctx, repo := withTx(t)

	news, err := repo.PublishedNews(ctx, 0)
	if err != nil {
		t.Fatalf("PublishedNews: %v", err)
	}
	for _, item := range news {
		if item.PublishedAt.After(BaseTime.Add(24 * time.Hour)) {
			t.Errorf("news %q published unexpectedly late: %v", item.Slug, item.PublishedAt)
		}
	}
}
