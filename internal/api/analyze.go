package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/discourses/discourses-go/internal/types"
)

// Analyze sends a single text for sentiment analysis and decodes the result.
func Analyze(ctx context.Context, httpClient *http.Client, baseURL string, req types.AnalyzeRequest) (*types.AnalysisResult, error) {
	if err := types.ValidateText(req.Text); err != nil {
		return nil, err
	}
	var res types.AnalysisResult
	if err := postJSON(ctx, httpClient, baseURL, PathAnalyze, req, &res); err != nil {
		return nil, err
	}
	// A 200 body without a label is a contract violation, not a neutral
	// result.
	if res.Label == "" {
		return nil, fmt.Errorf("analyze: response missing label")
	}
	return &res, nil
}
