package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/discourses/discourses-go/internal/types"
)

func TestBatch_Success(t *testing.T) {
	t.Parallel()
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze/batch" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{
			"results": {
				"post_1": {"classification":{"label":"bullish","confidence":0.7},"scores":{"outlook":0.71}},
				"post_2": {"error":"text too long"}
			},
			"meta": {"era":"meme","texts_processed":1,"texts_failed":1,"processing_time_ms":34}
		}`))
	}))
	defer srv.Close()

	req := types.BatchRequest{
		Texts: []types.BatchText{
			{ID: "post_1", Text: "Bullish on this!"},
			{ID: "post_2", Text: "Bearish sentiment here"},
		},
		Era: types.EraMeme,
	}
	got, err := Batch(context.Background(), srv.Client(), srv.URL, req)
	if err != nil {
		t.Fatalf("Batch error: %v", err)
	}
	// Results keyed exactly by the caller-supplied ids.
	if got.Len() != 2 {
		t.Fatalf("Len: %d", got.Len())
	}
	if e, ok := got.Results["post_1"]; !ok || e.Classification.Label != types.LabelBullish {
		t.Fatalf("post_1: %+v ok=%v", e, ok)
	}
	if e, ok := got.Results["post_2"]; !ok || !e.Failed() || e.Error != "text too long" {
		t.Fatalf("post_2: %+v ok=%v", e, ok)
	}
	if got.Meta.TextsProcessed+got.Meta.TextsFailed != len(req.Texts) {
		t.Fatalf("meta counts do not sum to submitted texts: %+v", got.Meta)
	}
	if got.Meta.Era != types.EraMeme || got.Meta.ProcessingTimeMS != 34 {
		t.Fatalf("meta: %+v", got.Meta)
	}

	texts, ok := gotBody["texts"].([]any)
	if !ok || len(texts) != 2 {
		t.Fatalf("request texts: %v", gotBody["texts"])
	}
	first, _ := texts[0].(map[string]any)
	if first["id"] != "post_1" || first["text"] != "Bullish on this!" {
		t.Fatalf("first item: %v", first)
	}
	if gotBody["era"] != "meme" {
		t.Fatalf("request era: %v", gotBody["era"])
	}
}

func TestBatch_ClientSideValidation(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid batch")
	}))
	defer srv.Close()

	bad := [][]types.BatchText{
		nil,
		{{ID: "", Text: "x"}},
		{{ID: "a", Text: ""}},
		{{ID: "a", Text: "one"}, {ID: "a", Text: "two"}},
	}
	for i, texts := range bad {
		_, err := Batch(context.Background(), srv.Client(), srv.URL, types.BatchRequest{Texts: texts})
		var apiErr *types.APIError
		if !errors.As(err, &apiErr) || apiErr.Kind != types.ErrKindValidation {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestBatch_AuthenticationError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	_, err := Batch(context.Background(), srv.Client(), srv.URL, types.BatchRequest{Texts: []types.BatchText{{ID: "a", Text: "x"}}})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != types.ErrKindAuthentication {
		t.Fatalf("expected authentication error, got %v", err)
	}
}
