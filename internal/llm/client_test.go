package llm

import (
	"context"
	"errors"
	"testing"
)

type fakeModelClient struct {
	payload []byte
	err     error
}

func (f fakeModelClient) CallModel(_ context.Context, _ string, _ CallOptions) ([]byte, error) {
	return f.payload, f.err
}

func TestModelOutputFlowsThroughParser(t *testing.T) {
	var c ModelClient = fakeModelClient{payload: []byte(`{"scores":[
		{"dimension_id":"a","raw_score":6,"evidence":["quote"]},
		{"dimension_id":"b","raw_score":9}
	]}`)}
	raw, err := c.CallModel(context.Background(), "score this essay", CallOptions{Model: "default"})
	if err != nil {
		t.Fatal(err)
	}
	entries, err := ParseScoreEntries(raw, testRubric())
	if err != nil {
		t.Fatal(err)
	}
	if entries["a"].RawScore != 6 || entries["b"].RawScore != 9 {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestModelCallErrorPropagates(t *testing.T) {
	wantErr := errors.New("model unavailable")
	var c ModelClient = fakeModelClient{err: wantErr}
	if _, err := c.CallModel(context.Background(), "prompt", CallOptions{}); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
