package youtube

import (
	"context"
)

// API defines the resource operations of the YouTube client
type API interface {
	// GetByID retrieves a video
	GetByID(ctx context.Context, id string) (Response, error)

	// GetByIDs retrieves many videos concurrently
	GetByIDs(ctx context.Context, ids []string, concurrency int) (BatchResult, error)

	// GetChannelByID retrieves a channel
	GetChannelByID(ctx context.Context, id string) (Response, error)

	// GetPlayListsByID retrieves a playlist
	GetPlayListsByID(ctx context.Context, id string) (Response, error)

	// GetPlayListsItemsByID retrieves the items of a playlist
	GetPlayListsItemsByID(ctx context.Context, id string, maxResults int) (Response, error)

	// Search runs a search query with optional passthrough parameters
	Search(ctx context.Context, query string, maxResults int, extra Params) (Response, error)

	// Related searches for videos related to a video
	Related(ctx context.Context, id string, maxResults int) (Response, error)

	// GetMostPopular retrieves the most popular chart
	GetMostPopular(ctx context.Context, maxResults int) (Response, error)

	// GetMostPopularByCategory retrieves the most popular chart of a category
	GetMostPopularByCategory(ctx context.Context, maxResults int, videoCategoryID string) (Response, error)

	// GetMostPopularByCategoryAndRegion retrieves the most popular chart of a category in a region
	GetMostPopularByCategoryAndRegion(ctx context.Context, maxResults int, videoCategoryID, region string) (Response, error)
}

// Stager stages parameters for the next resource operation
type Stager interface {
	SetKey(key string)
	SetNextPageToken(token string)
	AddPart(name string)
	AddParam(key string, value any)
	ClearParts()
	ClearParams()
}

var (
	_ API    = (*Client)(nil)
	_ Stager = (*Client)(nil)
)
