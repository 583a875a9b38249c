package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ytube/filter"
	"github.com/s0up4200/ytube/youtube"
)

// render applies --filter and prints the response as JSON or a tree
func render(cmd *cobra.Command, resp youtube.Response) error {
	resp, err := applyFilter(resp, filterExpr)
	if err != nil {
		return err
	}
	return writeResponse(cmd.OutOrStdout(), resp, jsonOutput)
}

// apiError prints the error result shape in JSON mode and returns err
func apiError(cmd *cobra.Command, err error) error {
	if ytErr, ok := youtube.AsError(err); ok && jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(ytErr.Result()); encErr != nil {
			logger.Warn().Err(encErr).Msg("Failed to encode error result")
		}
	}
	return fmt.Errorf("youtube: %w", err)
}

// applyFilter keeps only the items matching expression. The rest of the
// response envelope is left untouched.
func applyFilter(resp youtube.Response, expression string) (youtube.Response, error) {
	if strings.TrimSpace(expression) == "" {
		return resp, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matches := f.Apply(resp.Items())
	items := make([]any, 0, len(matches))
	for _, item := range matches {
		items = append(items, item)
	}

	filtered := make(youtube.Response, len(resp))
	for k, v := range resp {
		filtered[k] = v
	}
	filtered["items"] = items
	return filtered, nil
}

func writeResponse(w io.Writer, resp youtube.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	_, err := io.WriteString(w, formatItems(resp))
	return err
}

// formatItems formats a list response for console display
func formatItems(resp youtube.Response) string {
	items := resp.Items()
	if len(items) == 0 {
		return "No results found\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nResult")
	if len(items) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d", len(items))
	if total := resp.TotalResults(); total > len(items) {
		fmt.Fprintf(&sb, " of %d", total)
	}
	sb.WriteString("):\n\n")

	for i, item := range items {
		isLast := i == len(items)-1
		prefix := "├"
		indent := "│   "
		if isLast {
			prefix = "╰"
			indent = "    "
		}

		title := youtube.ItemTitle(item)
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&sb, "%s── %s (%s)\n", prefix, title, youtube.ItemID(item))

		snippet, _ := item["snippet"].(map[string]any)
		var meta []string
		if channel, _ := snippet["channelTitle"].(string); channel != "" {
			meta = append(meta, "Channel: "+channel)
		}
		if published, _ := snippet["publishedAt"].(string); len(published) >= 10 {
			meta = append(meta, "Published: "+published[:10])
		}
		if len(meta) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(meta, " | "))
		}

		if stats := formatStatistics(item); stats != "" {
			fmt.Fprintf(&sb, "%s%s\n", indent, stats)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	if token := resp.NextPageToken(); token != "" {
		fmt.Fprintf(&sb, "Next page token: %s\n", token)
	}

	return sb.String()
}

func formatStatistics(item map[string]any) string {
	var parts []string

	stats, _ := item["statistics"].(map[string]any)
	for _, field := range []struct{ key, label string }{
		{"viewCount", "Views"},
		{"likeCount", "Likes"},
		{"subscriberCount", "Subscribers"},
		{"videoCount", "Videos"},
	} {
		if v, ok := stats[field.key].(string); ok {
			parts = append(parts, field.label+": "+v)
		}
	}

	details, _ := item["contentDetails"].(map[string]any)
	if duration, ok := details["duration"].(string); ok {
		parts = append(parts, "Duration: "+strings.ToLower(strings.TrimPrefix(duration, "PT")))
	}
	if count, ok := details["itemCount"].(float64); ok {
		parts = append(parts, fmt.Sprintf("Items: %d", int(count)))
	}

	return strings.Join(parts, " | ")
}
