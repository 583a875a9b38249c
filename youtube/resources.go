package youtube

import "context"

// API resource paths
const (
	ResourceVideos        = "videos"
	ResourceChannels      = "channels"
	ResourcePlaylists     = "playlists"
	ResourcePlaylistItems = "playlistItems"
	ResourceSearch        = "search"
)

var (
	videoParts        = []string{"snippet", "contentDetails", "statistics", "status"}
	channelParts      = []string{"snippet", "contentDetails", "statistics", "status", "topicDetails"}
	playlistParts     = []string{"snippet", "contentDetails", "status", "player", "id"}
	playlistItemParts = []string{"contentDetails", "id", "snippet", "status"}
	searchParts       = []string{"snippet"}
)

// GetByID retrieves a video
func (c *Client) GetByID(ctx context.Context, id string) (Response, error) {
	return c.list(ctx, ResourceVideos, videoParts, Params{"id": id})
}

// GetChannelByID retrieves a channel
func (c *Client) GetChannelByID(ctx context.Context, id string) (Response, error) {
	return c.list(ctx, ResourceChannels, channelParts, Params{"id": id})
}

// GetPlayListsByID retrieves a playlist
func (c *Client) GetPlayListsByID(ctx context.Context, id string) (Response, error) {
	return c.list(ctx, ResourcePlaylists, playlistParts, Params{"id": id})
}

// GetPlayListsItemsByID retrieves the items of a playlist. A maxResults of
// zero or less omits the parameter and leaves the page size to the API.
func (c *Client) GetPlayListsItemsByID(ctx context.Context, id string, maxResults int) (Response, error) {
	params := Params{"playlistId": id}
	if maxResults > 0 {
		params["maxResults"] = maxResults
	}
	return c.list(ctx, ResourcePlaylistItems, playlistItemParts, params)
}

// Search runs a search query. Every non-nil entry of extra is forwarded as
// a query parameter (order, regionCode, relevanceLanguage, ...) and wins
// over q and maxResults on conflict. extra may be nil.
func (c *Client) Search(ctx context.Context, query string, maxResults int, extra Params) (Response, error) {
	return c.list(ctx, ResourceSearch, searchParts,
		Params{"q": query, "maxResults": maxResults},
		extra,
	)
}

// Related searches for videos related to the given video.
func (c *Client) Related(ctx context.Context, id string, maxResults int) (Response, error) {
	return c.list(ctx, ResourceSearch, searchParts, Params{
		"relatedToVideoId": id,
		"maxResults":       maxResults,
		"type":             "video",
		"order":            "relevance",
	})
}

// GetMostPopular retrieves the most popular videos chart
func (c *Client) GetMostPopular(ctx context.Context, maxResults int) (Response, error) {
	return c.list(ctx, ResourceVideos, videoParts, mostPopular(maxResults))
}

// GetMostPopularByCategory retrieves the most popular chart of a video category
func (c *Client) GetMostPopularByCategory(ctx context.Context, maxResults int, videoCategoryID string) (Response, error) {
	params := mostPopular(maxResults)
	params["videoCategoryId"] = videoCategoryID
	return c.list(ctx, ResourceVideos, videoParts, params)
}

// GetMostPopularByCategoryAndRegion retrieves the most popular chart of a
// video category in one region (ISO 3166-1 alpha-2 code).
func (c *Client) GetMostPopularByCategoryAndRegion(ctx context.Context, maxResults int, videoCategoryID, region string) (Response, error) {
	params := mostPopular(maxResults)
	params["videoCategoryId"] = videoCategoryID
	params["regionCode"] = region
	return c.list(ctx, ResourceVideos, videoParts, params)
}

func mostPopular(maxResults int) Params {
	return Params{
		"maxResults": maxResults,
		"chart":      "mostPopular",
	}
}
