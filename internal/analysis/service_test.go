package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/admitlens/admitlens/internal/rubric"
	"github.com/admitlens/admitlens/internal/textsim"
)

func goodEntries() []rubric.ScoreEntry {
	return []rubric.ScoreEntry{
		{DimensionID: "specificity", RawScore: 8},
		{DimensionID: "authenticity", RawScore: 8},
		{DimensionID: "impact", RawScore: 7},
		{DimensionID: "coherence", RawScore: 8},
		{DimensionID: "voice", RawScore: 7},
	}
}

const sampleBody = "Every Saturday for two years I tutored middle schoolers in algebra " +
	"at the community center, and by the spring session our pass rate had climbed " +
	"from half the class to nearly all of it."

func TestSubmitAndAnalyze(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()

	e, err := svc.SubmitEssay(ctx, "user-1", "essay", "Tutoring", sampleBody)
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == "" {
		t.Fatal("essay id not assigned")
	}

	rec, err := svc.Analyze(ctx, Request{
		EssayID: e.ID,
		Entries: goodEntries(),
		Claims:  []string{"I tutored middle schoolers in algebra"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.RubricVersion != rubric.DefaultVersion {
		t.Fatalf("RubricVersion = %q, want default", rec.RubricVersion)
	}
	if rec.Composite.FinalScore <= 0 || rec.Composite.FinalScore > 100 {
		t.Fatalf("FinalScore = %v", rec.Composite.FinalScore)
	}
	if len(rec.Repetition) != 0 {
		t.Fatalf("first essay should have no repetition flags: %+v", rec.Repetition)
	}
	if len(rec.Claims) != 1 || !rec.Claims[0].Verified {
		t.Fatalf("claim should verify against the essay body: %+v", rec.Claims)
	}
}

func TestAnalyzeFlagsRepetition(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()

	if _, err := svc.SubmitEssay(ctx, "user-1", "essay", "First", sampleBody); err != nil {
		t.Fatal(err)
	}
	reworded := strings.Replace(sampleBody, "middle schoolers", "eighth graders", 1)
	second, err := svc.SubmitEssay(ctx, "user-1", "essay", "Second", reworded)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := svc.Analyze(ctx, Request{EssayID: second.ID, Entries: goodEntries()})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Repetition) != 1 {
		t.Fatalf("Repetition = %+v, want one flag", rec.Repetition)
	}
	flag := rec.Repetition[0]
	if flag.Severity != textsim.SeverityCritical {
		t.Fatalf("severity = %v, want critical for a near-duplicate", flag.Severity)
	}
	if len(flag.Overlaps) == 0 {
		t.Fatal("expected overlap phrases for a near-duplicate")
	}
}

func TestAnalyzeIgnoresOtherUsers(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()

	if _, err := svc.SubmitEssay(ctx, "user-other", "essay", "Other", sampleBody); err != nil {
		t.Fatal(err)
	}
	mine, err := svc.SubmitEssay(ctx, "user-1", "essay", "Mine", sampleBody)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := svc.Analyze(ctx, Request{EssayID: mine.ID, Entries: goodEntries()})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Repetition) != 0 {
		t.Fatalf("repetition must be per-author, got %+v", rec.Repetition)
	}
}

func TestAnalyzeUnknownRubric(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()
	e, err := svc.SubmitEssay(ctx, "user-1", "essay", "T", sampleBody)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Analyze(ctx, Request{EssayID: e.ID, RubricVersion: "nope.v9", Entries: goodEntries()}); err == nil {
		t.Fatal("expected error for unknown rubric version")
	}
}

func TestAnalyzeRejectsDuplicateEntries(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()
	e, err := svc.SubmitEssay(ctx, "user-1", "essay", "T", sampleBody)
	if err != nil {
		t.Fatal(err)
	}
	entries := append(goodEntries(), rubric.ScoreEntry{DimensionID: "specificity", RawScore: 2})
	_, err = svc.Analyze(ctx, Request{EssayID: e.ID, Entries: entries})
	if err == nil {
		t.Fatal("expected error for duplicate dimension entries")
	}
	if !strings.Contains(err.Error(), `duplicate dimension "specificity"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestAnalyzeMissingEssay(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	_, err := svc.Analyze(context.Background(), Request{EssayID: "missing", Entries: goodEntries()})
	if !errors.Is(err, ErrEssayNotFound) {
		t.Fatalf("err = %v, want ErrEssayNotFound", err)
	}
}

func TestSubmitEssayValidation(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	ctx := context.Background()
	if _, err := svc.SubmitEssay(ctx, "", "essay", "T", "body"); err == nil {
		t.Fatal("expected error for empty user id")
	}
	if _, err := svc.SubmitEssay(ctx, "user-1", "poem", "T", "body"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	e := Essay{ID: "e1", UserID: "u1", Kind: "essay", Title: "T", Body: "B", CreatedAt: 1}
	if err := store.PutEssay(ctx, e); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetEssay(ctx, "e1")
	if err != nil || got != e {
		t.Fatalf("GetEssay = %+v, %v", got, err)
	}
	if _, err := store.GetRecord(ctx, "missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
