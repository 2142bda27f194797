package llm

import "strings"

const (
	HeadlineMarker  = "Headline:"
	SummaryMarker   = "Summary:"
	SentimentMarker = "Sentiment:"

	HeadlineNotFound  = "Headline not found in response."
	SummaryNotFound   = "Summary not found in response."
	SentimentNotFound = "Sentiment not found in response."
)

// ExtractedFields holds the labeled values found in a completion. Text is the headline
// or the summary depending on the mode. Missing lists markers absent from the completion;
// their fields carry the sentinel strings above.
type ExtractedFields struct {
	Text      string
	Sentiment string
	Missing   []string
}

// ParseCompletion locates labeled fields by plain substring search. The first occurrence of
// each marker wins and marker order is not checked.
func ParseCompletion(raw string, mode Mode) ExtractedFields {
	if mode == ModeSummary {
		return parseSummary(raw)
	}
	return parseHeadline(raw)
}

func parseHeadline(raw string) ExtractedFields {
	fields := ExtractedFields{
		Text:      HeadlineNotFound,
		Sentiment: strings.TrimSpace(raw),
	}

	start := strings.Index(raw, HeadlineMarker)
	if start < 0 {
		fields.Missing = append(fields.Missing, HeadlineMarker)
		return fields
	}
	start += len(HeadlineMarker)

	rest := raw[start:]
	if end := strings.Index(rest, "\n"); end >= 0 {
		rest = rest[:end]
	}
	fields.Text = strings.TrimSpace(rest)

	return fields
}

func parseSummary(raw string) ExtractedFields {
	fields := ExtractedFields{
		Text:      SummaryNotFound,
		Sentiment: SentimentNotFound,
	}

	sentiment := strings.Index(raw, SentimentMarker)

	if start := strings.Index(raw, SummaryMarker); start >= 0 {
		start += len(SummaryMarker)
		switch {
		case sentiment < 0:
			fields.Text = strings.TrimSpace(raw[start:])
		case sentiment < start:
			// sentiment came first: the span between the markers is empty
			fields.Text = ""
		default:
			fields.Text = strings.TrimSpace(raw[start:sentiment])
		}
	} else {
		fields.Missing = append(fields.Missing, SummaryMarker)
	}

	if sentiment >= 0 {
		fields.Sentiment = strings.TrimSpace(raw[sentiment+len(SentimentMarker):])
	} else {
		fields.Missing = append(fields.Missing, SentimentMarker)
	}

	return fields
}
