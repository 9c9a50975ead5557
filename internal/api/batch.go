package api

import (
	"context"
	"net/http"

	"github.com/discourses/discourses-go/internal/types"
)

// Batch analyzes many texts in one request. The service processes items
// independently: a bad item is reported in the result metadata rather than
// failing the whole call. Ids and texts are validated locally first.
func Batch(ctx context.Context, httpClient *http.Client, baseURL string, req types.BatchRequest) (*types.BatchResult, error) {
	if err := types.ValidateBatch(req.Texts); err != nil {
		return nil, err
	}
	var res types.BatchResult
	if err := postJSON(ctx, httpClient, baseURL, PathBatch, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
