package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// PageToMarkdown fetches the page's block children (following block
// pagination) and renders them as markdown. Provider errors propagate.
func (c *Client) PageToMarkdown(ctx context.Context, pageID string) (string, error) {
	var blocks []blockObject
	cursor := ""

	for {
		var resp blockListResponse
		path := fmt.Sprintf("/blocks/%s/children?page_size=%d", pageID, c.pageSize)
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return "", fmt.Errorf("list blocks for page %s: %w", pageID, err)
		}

		blocks = append(blocks, resp.Results...)
		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	return renderMarkdown(blocks), nil
}

func renderMarkdown(blocks []blockObject) string {
	var sb strings.Builder
	numbered := 0

	for _, b := range blocks {
		if b.Type != "numbered_list_item" {
			numbered = 0
		}

		switch b.Type {
		case "paragraph":
			writeLine(&sb, richText(b.Paragraph))
		case "heading_1":
			writeLine(&sb, "# "+richText(b.Heading1))
		case "heading_2":
			writeLine(&sb, "## "+richText(b.Heading2))
		case "heading_3":
			writeLine(&sb, "### "+richText(b.Heading3))
		case "bulleted_list_item":
			sb.WriteString("- " + richText(b.BulletedItem) + "\n")
		case "numbered_list_item":
			numbered++
			fmt.Fprintf(&sb, "%d. %s\n", numbered, richText(b.NumberedItem))
		case "quote":
			writeLine(&sb, "> "+richText(b.Quote))
		case "code":
			if b.Code != nil {
				sb.WriteString("```" + b.Code.Language + "\n")
				sb.WriteString(plainWireText(b.Code.RichText))
				sb.WriteString("\n```\n\n")
			}
		case "divider":
			writeLine(&sb, "---")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeLine(sb *strings.Builder, line string) {
	sb.WriteString(line)
	sb.WriteString("\n\n")
}

func richText(b *richTextBlock) string {
	if b == nil {
		return ""
	}
	return plainWireText(b.RichText)
}

func plainWireText(rts []wireRichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		sb.WriteString(rt.PlainText)
	}
	return sb.String()
}
