package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// ContactData holds everything the contact notification templates print.
type ContactData struct {
	ContactID int64  `json:"ContactID"`
	Name      string `json:"Name"`
	Email     string `json:"Email"`
	Company   string `json:"Company"`
	Subject   string `json:"Subject"`
	Message   string `json:"Message"`

	AppName     string `json:"AppName"`
	CompanyName string `json:"CompanyName"`

	// Submission context, all optional
	SubmittedAt     time.Time `json:"SubmittedAt"`
	SubmittedAtText string    `json:"SubmittedAtText"`
	IP              string    `json:"IP"`
	UserAgent       string    `json:"UserAgent"`
	Location        string    `json:"Location"`
}

// ToMap converts ContactData to a map[string]any for EmailJob.Data
func ToMap(d ContactData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// FromMap rebuilds ContactData from an EmailJob.Data map produced by ToMap.
func FromMap(m map[string]any) (ContactData, error) {
	var d ContactData
	b, err := json.Marshal(m)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return d, fmt.Errorf("contact data: %w", err)
	}
	return d, nil
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() {
			return fallback
		}
		if rv.IsZero() {
			return fallback
		}
		return value
	}
}

// nl2br escapes s and turns line breaks into <br>.
func nl2br(s string) htmpl.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return htmpl.HTML(strings.ReplaceAll(htmpl.HTMLEscapeString(s), "\n", "<br>"))
}

func baseFuncs() map[string]any {
	return map[string]any{
		"formatTime": func(t time.Time, layout string) string { return t.Format(layout) },
		"upper":      strings.ToUpper,
		"default":    defaultFn,
		"nl2br":      nl2br,
	}
}

var (
	htmlFuncMap = htmpl.FuncMap(baseFuncs())
	textFuncMap = texttpl.FuncMap(baseFuncs())
)

// Template names
const (
	ContactNotification = "contact_notification"
)

// renderFile loads and renders a single template file from the embedded FS.
// isHTML indicates whether to use html/template (true) or text/template (false).
func renderFile(filename string, isHTML bool, data any) (string, error) {
	var (
		buf bytes.Buffer
		err error
	)

	if isHTML {
		tpl, e := htmpl.New(filename).Funcs(htmlFuncMap).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse html %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	} else {
		tpl, e := texttpl.New(filename).Funcs(textFuncMap).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse text %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	}
	if err != nil {
		return "", fmt.Errorf("exec %q: %w", filename, err)
	}
	return buf.String(), nil
}

// Render loads and renders subject, text, and html templates for the given base name.
// Expects: <name>.subject.tmpl, <name>.text.tmpl, <name>.html.tmpl
func Render(name string, data any) (subject string, text string, html string, err error) {
	subject, err = renderFile(name+".subject.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderFile(name+".text.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderFile(name+".html.tmpl", true, data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
