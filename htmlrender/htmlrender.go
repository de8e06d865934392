// Package htmlrender renders paginate link sequences as HTML.
//
// The algorithmic core hands back abstract items; this package owns
// everything markup-shaped: URL construction from page numbers and
// query parameters, escaping, CSS hooks and the container element.
package htmlrender

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/driftwoodlabs/paginate"
)

// containerClass is the default class on the wrapping nav element;
// caller classes are merged into it.
const containerClass = "pagination"

// ItemRenderer produces markup for a single sequence item.
type ItemRenderer interface {
	RenderItem(item paginate.Item) (string, error)
}

// Renderer is the default ItemRenderer. Page links become anchors, the
// current page an em, gaps a span, and disabled controls spans with a
// "disabled" class so stylesheets can grey them out.
type Renderer struct {
	// BaseURL is the path links point at, e.g. "/books".
	BaseURL string

	// ParamName is the query parameter carrying the page number.
	// Empty means paginate.DefaultParamName.
	ParamName string

	// Query holds extra query parameters preserved on every link
	// (filters, sort order). The page parameter is overwritten.
	Query url.Values
}

// RenderItem implements ItemRenderer.
func (r *Renderer) RenderItem(item paginate.Item) (string, error) {
	switch item.Kind {
	case paginate.KindPage:
		if item.IsCurrent {
			return fmt.Sprintf(`<em class="current">%d</em>`, item.Page), nil
		}
		rel := ""
		if item.Rel != "" {
			rel = fmt.Sprintf(` rel=%q`, item.Rel)
		}
		return fmt.Sprintf(`<a href="%s"%s>%d</a>`, r.pageURL(item.Page), rel, item.Page), nil

	case paginate.KindGap:
		return `<span class="gap">&hellip;</span>`, nil

	case paginate.KindPrevious:
		return r.control(item, "previous_page", "prev"), nil

	case paginate.KindNext:
		return r.control(item, "next_page", "next"), nil
	}

	return "", paginate.Invalid("htmlrender.item", "unknown item kind %q", item.Kind)
}

// control renders a previous/next control, disabled when it has no
// target page.
func (r *Renderer) control(item paginate.Item, class, rel string) string {
	label := template.HTMLEscapeString(item.Label)
	if item.TargetPage == nil {
		return fmt.Sprintf(`<span class="%s disabled">%s</span>`, class, label)
	}
	return fmt.Sprintf(`<a class=%q rel=%q href="%s">%s</a>`,
		class, rel, r.pageURL(*item.TargetPage), label)
}

// pageURL builds the link target for a page number, preserving the
// renderer's extra query parameters.
func (r *Renderer) pageURL(page int) string {
	param := r.ParamName
	if param == "" {
		param = paginate.DefaultParamName
	}

	query := url.Values{}
	for key, values := range r.Query {
		if key == param {
			continue
		}
		query[key] = values
	}
	query.Set(param, strconv.Itoa(page))

	return template.HTMLEscapeString(r.BaseURL + "?" + query.Encode())
}

// AutoID derives a container id from the collection's entity name, for
// callers that set Options.AutoID: {"book", "books"} -> "books_pagination".
func AutoID(name paginate.EntityName) string {
	plural := name.Plural
	if plural == "" {
		plural = "entries"
	}
	return strings.ReplaceAll(plural, " ", "_") + "_pagination"
}

// Render writes the full pagination nav for m to w, delegating each
// item to r and joining the results with the configured separator.
//
// It returns an ECONFIG error when r is nil: the renderer is picked at
// composition time and a missing one is a wiring bug, not a condition
// to degrade around. A single-page collection writes nothing.
func Render(w io.Writer, m *paginate.Metadata, opts paginate.Options, r ItemRenderer) error {
	const op = "htmlrender.render"

	if r == nil {
		return paginate.Configuration(op, "no item renderer configured")
	}

	items := paginate.Build(m, opts)
	if len(items) == 0 {
		return nil
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := r.RenderItem(item)
		if err != nil {
			return paginate.Internal(err, op, "rendering item failed")
		}
		parts = append(parts, s)
	}

	separator := opts.Separator
	if separator == "" {
		separator = paginate.DefaultSeparator
	}
	body := strings.Join(parts, separator)

	if !opts.Container {
		_, err := io.WriteString(w, body)
		return err
	}

	_, err := fmt.Fprintf(w, `<nav class=%q%s>%s</nav>`,
		twmerge.Merge(containerClass, opts.Class), attrString(opts.Attrs), body)
	return err
}

// attrString renders passthrough attributes sorted by key, each
// escaped, with a leading space.
func attrString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, ` %s="%s"`,
			template.HTMLEscapeString(key), template.HTMLEscapeString(attrs[key]))
	}
	return b.String()
}
