package paginate

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Canonical option defaults.
const (
	DefaultInnerWindow   = 4
	DefaultOuterWindow   = 1
	DefaultParamName     = "page"
	DefaultSeparator     = " "
	DefaultPreviousLabel = "← Previous"
	DefaultNextLabel     = "Next →"
)

// LabelResolver supplies display labels by key, falling back to the
// given default when the key has no translation. Implementations
// typically wrap a message catalog; a nil resolver keeps the hardcoded
// fallbacks.
type LabelResolver interface {
	Label(key, fallback string) string
}

// Options configures link-sequence assembly and carries the residual
// settings a renderer needs. Start from DefaultOptions and override
// fields; the zero value is usable but renders with zero-width windows
// and no page links.
type Options struct {
	Window    Window `option:",squash"`
	PageLinks bool   `option:"page_links"` // emit numbered page links, not just prev/next
	Container bool   `option:"container"`  // wrap rendered output in a container element
	ParamName string `option:"param_name"` // query parameter carrying the page number
	Separator string `option:"separator"`  // joins rendered items

	PreviousLabel string `option:"previous_label"`
	NextLabel     string `option:"next_label"`

	// Class is always retained for the container even though it is a
	// recognized key; renderers merge it with their own default class.
	Class string `option:"class"`

	// AutoID flags that the caller asked for a container id derived
	// from the collection's entity name. Deriving it is the rendering
	// collaborator's job.
	AutoID bool `option:"auto_id"`

	// Attrs holds unrecognized option keys, passed through to the
	// container as HTML attributes.
	Attrs map[string]string `option:"-"`

	Labels LabelResolver `option:"-"`
}

// DefaultOptions returns the canonical option set.
func DefaultOptions() Options {
	return Options{
		Window:        Window{Inner: DefaultInnerWindow, Outer: DefaultOuterWindow},
		PageLinks:     true,
		Container:     true,
		ParamName:     DefaultParamName,
		Separator:     DefaultSeparator,
		PreviousLabel: DefaultPreviousLabel,
		NextLabel:     DefaultNextLabel,
	}
}

// deprecatedKeys maps retired option spellings to their replacements.
var deprecatedKeys = map[string]string{
	"prev_label": "previous_label",
}

// OptionsFromMap decodes an open options bag into Options, starting
// from DefaultOptions. Keys the schema does not recognize are
// collected into Attrs for HTML passthrough. Deprecated key spellings
// are migrated to their current names and reported as notices so the
// caller can log them.
func OptionsFromMap(bag map[string]interface{}) (Options, []string, error) {
	const op = "paginate.options"

	opts := DefaultOptions()
	if len(bag) == 0 {
		return opts, nil, nil
	}

	// Migrate deprecated spellings on a copy; the caller's bag is not
	// touched.
	clean := make(map[string]interface{}, len(bag))
	var notices []string
	for key, value := range bag {
		if replacement, ok := deprecatedKeys[key]; ok {
			notices = append(notices, fmt.Sprintf("option %q is deprecated, use %q", key, replacement))
			key = replacement
		}
		clean[key] = value
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		Metadata:         &md,
		TagName:          "option",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return opts, notices, Internal(err, op, "building options decoder failed")
	}
	if err := dec.Decode(clean); err != nil {
		return opts, notices, Invalid(op, "invalid options: %v", err)
	}

	for _, key := range md.Unused {
		if opts.Attrs == nil {
			opts.Attrs = make(map[string]string)
		}
		opts.Attrs[key] = fmt.Sprint(clean[key])
	}

	return opts, notices, nil
}

// previousLabel resolves the previous-control label through the
// configured resolver, if any.
func (o Options) previousLabel() string {
	fallback := o.PreviousLabel
	if fallback == "" {
		fallback = DefaultPreviousLabel
	}
	if o.Labels != nil {
		return o.Labels.Label("previous_label", fallback)
	}
	return fallback
}

// nextLabel resolves the next-control label.
func (o Options) nextLabel() string {
	fallback := o.NextLabel
	if fallback == "" {
		fallback = DefaultNextLabel
	}
	if o.Labels != nil {
		return o.Labels.Label("next_label", fallback)
	}
	return fallback
}
