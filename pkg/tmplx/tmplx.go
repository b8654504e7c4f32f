package tmplx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"text/template"

	"github.com/spf13/cast"
)

var (
	ErrRenderTemplate = errors.New("tmplx: render error")
	ErrParseTemplate  = errors.New("tmplx: parse error")
)

// Template is a set of named templates sharing one function map.
// Values are inserted verbatim; callers escape what they render.
type Template struct {
	tmpl *template.Template
}

type Options struct {
	funcs template.FuncMap
}

type Option func(*Options) error

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"default":        defaultFunc,
		"encodeUrlQuery": encodeUrlQuery,
	}
}

// WithTemplateFunc adds a single custom template function
func WithTemplateFunc(name string, fn any) Option {
	return func(o *Options) error {
		if fn == nil {
			return fmt.Errorf("template func %q is nil", name)
		}
		o.funcs[name] = fn
		return nil
	}
}

func newOptions(args []Option) (*Options, error) {
	opts := &Options{
		funcs: defaultFuncs(),
	}
	for _, arg := range args {
		if err := arg(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// ParseFS parses every file matching patterns. Each file is addressable by
// its base name, and by any {{define}} block it declares.
func ParseFS(fsys fs.FS, patterns []string, args ...Option) (*Template, error) {
	opts, err := newOptions(args)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("").
		Option("missingkey=zero").
		Funcs(opts.funcs).
		ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// RenderNamed executes the template called name into w. Output is buffered
// so a failing template never writes a partial page.
func (t *Template) RenderNamed(w io.Writer, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := t.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderTemplate, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func defaultFunc(def any, value any) any {
	if value != nil && value != "" {
		return value
	}
	return def
}

func encodeUrlQuery(queries ...any) string {
	query := url.Values{}
	for i := 0; i < len(queries); i += 2 {
		value := ""
		if i+1 < len(queries) {
			value = cast.ToString(queries[i+1])
		}
		query.Add(cast.ToString(queries[i]), value)
	}
	return query.Encode()
}
