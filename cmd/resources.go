package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ytube/youtube"
)

var (
	itemsMaxResults int
	pageToken       string
)

// videoCmd looks up one or more videos
var videoCmd = &cobra.Command{
	Use:   "video ID [ID...]",
	Short: "Show videos by ID",
	Long: `Show snippet, content details, statistics and status of videos.

Several IDs are looked up concurrently, bounded by batch.concurrency.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVideo,
}

// channelCmd looks up a channel
var channelCmd = &cobra.Command{
	Use:   "channel ID",
	Short: "Show a channel by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetChannelByID(cmd.Context(), args[0])
		if err != nil {
			return apiError(cmd, err)
		}
		return render(cmd, resp)
	},
}

// playlistCmd looks up a playlist
var playlistCmd = &cobra.Command{
	Use:   "playlist ID",
	Short: "Show a playlist by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetPlayListsByID(cmd.Context(), args[0])
		if err != nil {
			return apiError(cmd, err)
		}
		return render(cmd, resp)
	},
}

// playlistItemsCmd lists the items of a playlist
var playlistItemsCmd = &cobra.Command{
	Use:   "playlist-items ID",
	Short: "List the items of a playlist",
	Long: `List the items of a playlist. Without --max the API picks the page size.
Pass the printed next page token back with --page-token to continue.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stagePageToken()
		resp, err := client.GetPlayListsItemsByID(cmd.Context(), args[0], itemsMaxResults)
		if err != nil {
			return apiError(cmd, err)
		}
		return render(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(channelCmd)
	rootCmd.AddCommand(playlistCmd)
	rootCmd.AddCommand(playlistItemsCmd)

	playlistItemsCmd.Flags().IntVarP(&itemsMaxResults, "max", "n", 0, "maximum number of items (API default when unset)")
	playlistItemsCmd.Flags().StringVar(&pageToken, "page-token", "", "page token from a previous response")
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		resp, err := client.GetByID(ctx, args[0])
		if err != nil {
			return apiError(cmd, err)
		}
		return render(cmd, resp)
	}

	result, err := client.GetByIDs(ctx, args, cfg.Batch.Concurrency)
	if err != nil {
		return apiError(cmd, err)
	}

	// Merge the single-item responses into one list response
	var items []any
	for _, resp := range result.Responses {
		for _, item := range resp.Items() {
			items = append(items, item)
		}
	}
	for _, failed := range result.Failed {
		logger.Warn().Err(failed.Err).Str("id", failed.ID).Msg("Video lookup failed")
	}

	if err := render(cmd, youtube.Response{"items": items}); err != nil {
		return err
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d video lookups failed", len(result.Failed), result.Requested)
	}
	return nil
}

// stagePageToken forwards --page-token to the next request
func stagePageToken() {
	if pageToken != "" {
		client.SetNextPageToken(pageToken)
	}
}
