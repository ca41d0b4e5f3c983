// Package render turns stored comment text into safe HTML.
package render

import (
	"bytes"
	"context"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/Guyuepp/go-comments-api/domain"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()
)

func init() {
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
}

// Markdown renders source as sanitized HTML. On a render failure the
// escaped source is returned.
func Markdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		logrus.Warnf("failed to render comment markdown: %v", err)
		return html.EscapeString(source)
	}
	return string(policy.SanitizeBytes(buf.Bytes()))
}

// CommentText is a comment_text filter rendering the content as markdown.
func CommentText(_ context.Context, content string, _ domain.HookArgs) string {
	return Markdown(content)
}
