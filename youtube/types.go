package youtube

// Response is a decoded API response body. The schema belongs to the API
// and is not validated here.
type Response map[string]any

// Items returns the "items" array of a list response. Entries that are
// not JSON objects are skipped.
func (r Response) Items() []map[string]any {
	raw, ok := r["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if item, ok := v.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}

// NextPageToken returns the cursor for the following page, if any.
func (r Response) NextPageToken() string {
	token, _ := r["nextPageToken"].(string)
	return token
}

// PrevPageToken returns the cursor for the previous page, if any.
func (r Response) PrevPageToken() string {
	token, _ := r["prevPageToken"].(string)
	return token
}

// TotalResults returns pageInfo.totalResults, or 0 when absent.
func (r Response) TotalResults() int {
	pageInfo, ok := r["pageInfo"].(map[string]any)
	if !ok {
		return 0
	}
	total, _ := pageInfo["totalResults"].(float64)
	return int(total)
}

// ItemTitle returns snippet.title of a response item.
func ItemTitle(item map[string]any) string {
	snippet, ok := item["snippet"].(map[string]any)
	if !ok {
		return ""
	}
	title, _ := snippet["title"].(string)
	return title
}

// ItemID returns the identifier of a response item. Search results nest
// it as {"kind": ..., "videoId": ...}; other resources use a plain string.
func ItemID(item map[string]any) string {
	switch id := item["id"].(type) {
	case string:
		return id
	case map[string]any:
		for _, key := range []string{"videoId", "channelId", "playlistId"} {
			if v, ok := id[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}
