package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/admitlens/admitlens/internal/claims"
	"github.com/admitlens/admitlens/internal/llm"
	"github.com/admitlens/admitlens/internal/rubric"
	"github.com/admitlens/admitlens/internal/textsim"
)

// Service orchestrates one analysis: repetition detection against the
// author's prior submissions, rubric scoring of externally produced
// dimension entries, and claim validation against the author's corpus.
type Service struct {
	store  Store
	events *EventRepo // optional; nil disables the audit log
}

func NewService(store Store, events *EventRepo) *Service {
	return &Service{store: store, events: events}
}

// SubmitEssay stores a new submission and returns it with its assigned id.
func (s *Service) SubmitEssay(ctx context.Context, userID, kind, title, body string) (Essay, error) {
	if strings.TrimSpace(userID) == "" {
		return Essay{}, fmt.Errorf("user id is required")
	}
	if kind != "essay" && kind != "activity" {
		return Essay{}, fmt.Errorf("unknown submission kind %q", kind)
	}
	e := Essay{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.store.PutEssay(ctx, e); err != nil {
		return Essay{}, err
	}
	s.appendEvent(ctx, EventEssaySubmitted, e.ID, map[string]string{"user_id": e.UserID, "kind": e.Kind})
	return e, nil
}

// Request describes one analysis run. Entries come from the model
// orchestration layer as a flat list; Analyze runs them through the same
// validation as model output (internal/llm) before scoring, so duplicate or
// unknown dimensions are rejected rather than silently collapsed. Claims are
// the assertions to cross-check against the author's submissions.
type Request struct {
	EssayID       string
	RubricVersion string // empty selects rubric.DefaultVersion
	Entries       []rubric.ScoreEntry
	Claims        []string
}

// Analyze runs the full pipeline for one submission and persists the
// resulting record.
func (s *Service) Analyze(ctx context.Context, req Request) (Record, error) {
	essay, err := s.store.GetEssay(ctx, req.EssayID)
	if err != nil {
		return Record{}, err
	}

	version := req.RubricVersion
	if version == "" {
		version = rubric.DefaultVersion
	}
	rub, ok := rubric.Get(version)
	if !ok {
		return Record{}, fmt.Errorf("unknown rubric version %q", version)
	}

	entries, err := llm.ValidateEntries(req.Entries, rub)
	if err != nil {
		return Record{}, fmt.Errorf("score entries: %w", err)
	}
	composite, err := rubric.Score(entries, rub)
	if err != nil {
		return Record{}, err
	}

	priors, err := s.store.ListEssaysByUser(ctx, essay.UserID)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:            uuid.NewString(),
		EssayID:       essay.ID,
		UserID:        essay.UserID,
		RubricVersion: rub.Version,
		Composite:     composite,
		CreatedAt:     time.Now().Unix(),
	}

	// Repetition: compare against everything the author submitted before
	// this essay. Only flagged pairs (severity above none) are recorded.
	corpus := []string{essay.Body}
	for _, prior := range priors {
		if prior.ID == essay.ID {
			continue
		}
		corpus = append(corpus, prior.Body)
		res := textsim.Compare(essay.Body, prior.Body)
		if res.Severity == textsim.SeverityNone {
			continue
		}
		rec.Repetition = append(rec.Repetition, RepetitionFlag{
			EssayID:  prior.ID,
			Score:    res.Score,
			Severity: res.Severity,
			Overlaps: textsim.ExtractOverlap(essay.Body, prior.Body, 0),
		})
	}

	for _, claim := range req.Claims {
		rec.Claims = append(rec.Claims, ClaimCheck{
			Claim:      claim,
			Validation: claims.Validate(claim, corpus),
		})
	}

	if err := s.store.PutRecord(ctx, rec); err != nil {
		return Record{}, err
	}
	s.appendEvent(ctx, EventAnalysisCompleted, rec.ID, map[string]any{
		"essay_id":    rec.EssayID,
		"final_score": rec.Composite.FinalScore,
		"impression":  rec.Composite.Impression,
	})
	return rec, nil
}

// appendEvent is best-effort: a failed audit write never fails the request.
func (s *Service) appendEvent(ctx context.Context, typ, key string, data any) {
	if s.events == nil {
		return
	}
	buf, _ := json.Marshal(data)
	if err := s.events.Append(ctx, Event{Type: typ, Key: key, DataJSON: string(buf)}); err != nil {
		log.Printf("event log append (%s %s): %v", typ, key, err)
	}
}
