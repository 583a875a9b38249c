// Package youtube provides a client for the YouTube Data API v3.
//
// The client builds query-string GET requests, sends exactly one HTTP
// request per operation and normalizes the outcome into a decoded
// Response or an *Error. Nothing is retried, cached or rate limited.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := youtube.NewClient("your-api-key", logger,
//		youtube.WithTimeout(10*time.Second),
//	)
//
//	resp, err := client.Search(ctx, "golang", 5, youtube.Params{
//		"order":      "date",
//		"regionCode": "DE",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range resp.Items() {
//		fmt.Println(youtube.ItemTitle(item))
//	}
//
// # Staged parameters
//
// SetKey, SetNextPageToken, AddParam and AddPart stage values for the next
// operation. Each operation takes its own copy of the staged values and
// resets them to just the key, whether or not the request succeeds.
//
// # Error Handling
//
// Every failure is an *Error whose Message is one of a fixed set of strings
// or the API's own error message:
//
//   - KindValidation: no key set, MsgMissingKey (errors.Is ErrMissingKey)
//   - KindNotFound: HTTP 404, MsgNotFound
//   - KindForbidden: HTTP 403 for an unauthorized request, MsgForbidden
//   - KindRateLimited: any other HTTP 403, MsgRateLimited
//   - KindAPI: the API's error.message
//   - KindUnknown: transport failures and anything else, MsgUnknown
//
//	if ytErr, ok := youtube.AsError(err); ok && ytErr.IsRateLimited() {
//		// quota exhausted
//	}
package youtube
