package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ytube/youtube"
)

var (
	maxResults   int
	searchParams []string
	categoryID   string
	regionCode   string
)

// searchCmd runs a search query
var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search videos, channels and playlists",
	Long: `Search the YouTube catalogue.

Any search.list parameter can be passed through with --param, e.g.

  ytube search golang --param order=date --param regionCode=DE --param type=video`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// relatedCmd searches for related videos
var relatedCmd = &cobra.Command{
	Use:   "related VIDEO_ID",
	Short: "Search videos related to a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stagePageToken()
		resp, err := client.Related(cmd.Context(), args[0], maxResults)
		if err != nil {
			return apiError(cmd, err)
		}
		return render(cmd, resp)
	},
}

// popularCmd fetches the most popular chart
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most popular videos",
	Long: `Show the most popular videos chart, optionally narrowed to a video
category and a region (ISO 3166-1 alpha-2 code). --region needs --category.`,
	Args: cobra.NoArgs,
	RunE: runPopular,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(popularCmd)

	for _, c := range []*cobra.Command{searchCmd, relatedCmd, popularCmd} {
		c.Flags().IntVarP(&maxResults, "max", "n", 5, "maximum number of results")
		c.Flags().StringVar(&pageToken, "page-token", "", "page token from a previous response")
	}

	searchCmd.Flags().StringArrayVarP(&searchParams, "param", "p", nil, "extra query parameter as key=value (repeatable)")
	popularCmd.Flags().StringVar(&categoryID, "category", "", "video category ID")
	popularCmd.Flags().StringVar(&regionCode, "region", "", "region code, requires --category")
}

func runSearch(cmd *cobra.Command, args []string) error {
	extra, err := parseParams(searchParams)
	if err != nil {
		return err
	}

	stagePageToken()
	resp, err := client.Search(cmd.Context(), strings.Join(args, " "), maxResults, extra)
	if err != nil {
		return apiError(cmd, err)
	}
	return render(cmd, resp)
}

func runPopular(cmd *cobra.Command, args []string) error {
	if regionCode != "" && categoryID == "" {
		return fmt.Errorf("--region requires --category")
	}

	stagePageToken()

	var (
		resp youtube.Response
		err  error
	)
	switch {
	case regionCode != "":
		resp, err = client.GetMostPopularByCategoryAndRegion(cmd.Context(), maxResults, categoryID, regionCode)
	case categoryID != "":
		resp, err = client.GetMostPopularByCategory(cmd.Context(), maxResults, categoryID)
	default:
		resp, err = client.GetMostPopular(cmd.Context(), maxResults)
	}
	if err != nil {
		return apiError(cmd, err)
	}
	return render(cmd, resp)
}

// parseParams turns key=value flags into passthrough parameters
func parseParams(pairs []string) (youtube.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(youtube.Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q (expected key=value)", pair)
		}
		params[key] = value
	}
	return params, nil
}
