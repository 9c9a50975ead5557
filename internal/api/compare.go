package api

import (
	"context"
	"net/http"

	"github.com/discourses/discourses-go/internal/types"
)

// CompareEras analyzes the same text under several era lexicons and reports
// the drift between them. An empty era list asks the service to compare all
// eras; unknown era identifiers are rejected server-side with a validation
// error.
func CompareEras(ctx context.Context, httpClient *http.Client, baseURL string, req types.CompareErasRequest) (*types.CompareResult, error) {
	if err := types.ValidateText(req.Text); err != nil {
		return nil, err
	}
	var res types.CompareResult
	if err := postJSON(ctx, httpClient, baseURL, PathCompareEras, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
