// Package filter selects YouTube API response items with expr expressions.
//
// Each item's top-level fields (id, snippet, statistics, contentDetails, ...)
// are variables of the expression:
//
//	num(statistics.viewCount) > 10000 && icontains(snippet.title, "golang")
//	durationSeconds(contentDetails.duration) < 600
//	ageDays(snippet.publishedAt) <= 7
//
// Compiled programs are cached per Compiler, keyed by expression.
package filter
