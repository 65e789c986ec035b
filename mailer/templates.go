package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// NoticeParams is the data handed to the member notice template.
type NoticeParams struct {
	MemberName string
	EmailDate  string
	Year       string
}

type Template struct {
	tmpl *template.Template
}

// LoadTemplate parses the notice template named by the job config. The
// template file is an operations-owned artifact shipped next to the job, so
// it is loaded from disk rather than compiled in.
func LoadTemplate(dir, file string) (*Template, error) {
	t, err := template.ParseFiles(filepath.Join(dir, file))
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", file, err)
	}
	return &Template{tmpl: t}, nil
}

func (t *Template) Render(p NoticeParams) (string, error) {
	b := bytes.Buffer{}
	err := t.tmpl.Execute(&b, p)
	return b.String(), err
}
