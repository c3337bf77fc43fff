// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package normalize

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/k3a/html2text"
	"github.com/microcosm-cc/bluemonday"
)

// Converter converts a markup fragment to plain text.
type Converter interface {
	Convert(markup string) (string, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(markup string) (string, error)

// Convert implements [Converter.Convert].
func (f ConverterFunc) Convert(markup string) (string, error) {
	return f(markup)
}

// entityReplacer decodes the entities the markdown renderer writes for literal
// text. The definitions are stored as plain text.
var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// MarkdownConverter converts markup to markdown. It escapes punctuation that
// could be read as markdown syntax, which Unescape partly reverses. Angle
// brackets and ampersands are written literally.
type MarkdownConverter struct {
	conv *converter.Converter
}

// NewMarkdownConverter returns a new MarkdownConverter.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert implements [Converter.Convert].
func (c *MarkdownConverter) Convert(markup string) (string, error) {
	md, err := c.conv.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("converting markup to markdown: %w", err)
	}
	return entityReplacer.Replace(md), nil
}

// TextConverter converts markup to plain text without markdown syntax.
type TextConverter struct{}

// NewTextConverter returns a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert implements [Converter.Convert].
func (*TextConverter) Convert(markup string) (string, error) {
	return html2text.HTML2TextWithOptions(markup, html2text.WithUnixLineBreaks()), nil
}

// newSanitizer returns a policy that keeps the formatting elements and links
// found in definitions. Other elements are unwrapped and script or style
// content is dropped.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"b", "strong", "i", "em", "u", "small", "big",
		"sup", "sub", "br", "p", "div", "span",
		"ul", "ol", "li",
	)
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowAttrs("href").OnElements("a")
	return p
}
