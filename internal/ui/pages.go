// Package ui provides the Datastar-based web UI for plat-respond.
package ui

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

// GenerateView is the data behind the Generate page.
type GenerateView struct {
	Filter   template.Filter
	Facets   template.Facets
	Total    int
	Entries  []store.Entry
	Selected *store.Entry
	Warnings []string
	Error    string
	RetryURL string
}

// EditView is the data behind the Edit page.
type EditView struct {
	Filenames []string
	Filename  string
	Template  *template.Template
	Error     string
	RetryURL  string
}

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("Response Maker")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Generate Response")),
					h.A(h.Href("/new"), g.Text("Add New Template")),
					h.A(h.Href("/edit"), g.Text("Edit Template")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-respond - email response templates"),
			),
		),
	)
}

// GeneratePage renders the template picker and variable form.
func GeneratePage(v GenerateView) g.Node {
	content := []g.Node{h.H1(g.Text("Generate Response"))}

	switch {
	case v.Error != "":
		content = append(content, Warning(v.Error, v.RetryURL))
	case v.Total == 0:
		content = append(content, h.Div(h.Class("warning"),
			g.Text("No templates found. Please add a template first. "),
			h.A(h.Href("/new"), g.Text("Add a template")),
		))
	default:
		content = append(content, filterForm(v))
		for _, w := range v.Warnings {
			content = append(content, Warning(w, ""))
		}
		if v.Selected == nil {
			content = append(content, h.Div(h.Class("info"), g.Text("No templates match the selected filters.")))
		} else {
			content = append(content, generateForm(v.Selected))
		}
	}

	return Layout("Generate Response - plat-respond", content...)
}

func filterForm(v GenerateView) g.Node {
	var options []g.Node
	for _, e := range v.Entries {
		options = append(options, h.Option(
			h.Value(e.Filename),
			g.If(v.Selected != nil && v.Selected.Filename == e.Filename, h.Selected()),
			g.Text(e.Label()),
		))
	}

	return h.Form(h.Class("section filters"), h.Method("get"), h.Action("/"),
		h.Input(h.Type("hidden"), h.Name("filtered"), h.Value("1")),
		h.Div(h.Class("filter-grid"),
			multiSelect("user", "Filter by User Alias", v.Facets.Users, v.Filter.Users),
			multiSelect("skill", "Filter by Skill", v.Facets.Skills, v.Filter.Skills),
		),
		h.Div(h.Class("form-group"),
			h.Label(h.For("q"), g.Text("Search by filename")),
			h.Input(h.ID("q"), h.Type("search"), h.Name("q"), h.Value(v.Filter.Query),
				h.Placeholder("e.g. reimbursement"),
			),
		),
		h.Button(h.Type("submit"), g.Text("Apply filters")),
		g.If(len(options) > 0,
			h.Div(h.Class("form-group picker"),
				h.Label(h.For("template"), g.Text("Choose a template")),
				h.Select(h.ID("template"), h.Name("template"),
					g.Attr("onchange", "this.form.submit()"),
					g.Group(options),
				),
			),
		),
	)
}

func multiSelect(name, label string, all, selected []string) g.Node {
	var options []g.Node
	for _, v := range all {
		options = append(options, h.Option(
			h.Value(v),
			g.If(selected == nil || slices.Contains(selected, v), h.Selected()),
			g.Text(v),
		))
	}
	return h.Div(h.Class("form-group"),
		h.Label(h.For(name), g.Text(label)),
		h.Select(h.ID(name), h.Name(name), h.Multiple(), g.Group(options)),
	)
}

func generateForm(e *store.Entry) g.Node {
	t := e.Template
	names := t.Inputs()

	vars := make(map[string]any, len(names))
	var inputs []g.Node
	for i, name := range names {
		key := varKey(i)
		vars[key] = ""
		inputs = append(inputs, h.Div(h.Class("form-group"),
			h.Label(h.For("var-"+key), g.Text(template.VariableLabel(name))),
			h.Input(h.ID("var-"+key), h.Type("text"), data.Bind("vars."+key)),
		))
	}

	description := t.Description
	if description == "" {
		description = "No description provided."
	}

	file := url.QueryEscape(e.Filename)
	return h.Div(h.Class("section"),
		data.Signals(map[string]any{
			"vars":       vars,
			"result":     "",
			"error":      "",
			"copied":     false,
			"generating": false,
		}),

		h.P(h.Strong(g.Text("Template: ")), g.Text(t.Name)),
		h.P(h.Strong(g.Text("Description: ")), g.Text(description)),
		h.P(h.Strong(g.Text("Email Preview:"))),
		h.Pre(h.Class("preview"), g.Text(t.Body)),
		divergenceWarning(t),

		h.H2(g.Text("Fill in the variables:")),
		g.Group(inputs),

		h.Button(
			data.On("click", "$generating = true; @post('/api/generate?template="+file+"')"),
			data.Attr("disabled", "$generating"),
			h.Span(data.Show("!$generating"), g.Text("Generate Response")),
			h.Span(data.Show("$generating"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Generating..."),
			),
		),

		h.Div(h.Class("error"), data.Show("$error"), data.Text("$error")),

		h.Div(h.ID("response-panel"), data.Show("$result"),
			h.Div(h.Class("success"), g.Text("Generated Email:")),
			h.Textarea(h.ID("response"), h.ReadOnly(), h.Rows("16"),
				data.Bind("result"),
				data.On("copy", "$copied = true; setTimeout(() => $copied = false, 2000)"),
			),
			h.Div(h.Class("actions"),
				h.Button(
					data.On("click", "navigator.clipboard.writeText($result); $copied = true; setTimeout(() => $copied = false, 2000)"),
					g.Text("Copy"),
				),
				h.Button(
					data.On("click", downloadExpr(file, len(names))),
					g.Text("Download as .txt"),
				),
			),
		),
		h.Div(h.Class("copy-msg"), data.Show("$copied"), g.Text("Email is copied")),
	)
}

// downloadExpr builds the client expression that requests /download with
// the current input values.
func downloadExpr(file string, n int) string {
	var b strings.Builder
	b.WriteString("window.location = '/download?template=" + file + "'")
	for i := 0; i < n; i++ {
		key := varKey(i)
		fmt.Fprintf(&b, " + '&%s=' + encodeURIComponent($vars.%s)", key, key)
	}
	return b.String()
}

func divergenceWarning(t *template.Template) g.Node {
	div := t.Divergence()
	if div.Empty() {
		return nil
	}
	return Warning("Declared variables do not match the body: "+div.String()+".", "")
}

// NewTemplatePage renders the form for adding a template.
func NewTemplatePage() g.Node {
	return Layout("Add Template - plat-respond",
		data.Signals(map[string]any{
			"mode":            "new",
			"filename":        "",
			"name":            "",
			"description":     "",
			"body":            "",
			"detected":        "None",
			"variables":       "",
			"variablesEdited": false,
			"saving":          false,
			"message":         "",
			"error":           "",
		}),

		h.Div(h.Class("banner"),
			h.Strong(g.Text("Anyone can add a new template!")),
			h.P(h.B(g.Text("Template Name: ")), h.Code(g.Text("[useralias]_[skill]_[templatename]"))),
			h.P(h.B(g.Text("Example: ")), h.Code(g.Text("tirshiva_ILAC_reimbursement"))),
			h.P(h.B(g.Text("Parts: ")),
				h.Code(g.Text("useralias")), g.Text(" (your name), "),
				h.Code(g.Text("skill")), g.Text(" (department), "),
				h.Code(g.Text("templatename")), g.Text(" (purpose)"),
			),
			h.P(h.B(g.Text("Description: ")), g.Text("Briefly state when to use this template.")),
			h.P(h.B(g.Text("All templates are shared with all users."))),
		),

		h.H1(g.Text("Add a New Email Template")),
		h.Div(h.Class("section template-form"),
			h.Div(h.Class("form-group"),
				h.Label(h.For("name"), g.Text("Template Name (e.g., tirshiva_ILAC_reimbursement)")),
				h.Input(h.ID("name"), h.Type("text"), data.Bind("name")),
			),
			templateFields(),
			saveButton("Save Template"),
		),
	)
}

// EditTemplatePage renders the form for editing an existing template.
func EditTemplatePage(v EditView) g.Node {
	content := []g.Node{h.H1(g.Text("Edit an Existing Template"))}

	if len(v.Filenames) == 0 && v.Error == "" {
		content = append(content, h.Div(h.Class("warning"), g.Text("No templates found to edit.")))
		return Layout("Edit Template - plat-respond", content...)
	}

	if len(v.Filenames) > 0 {
		var options []g.Node
		for _, name := range v.Filenames {
			options = append(options, h.Option(h.Value(name), g.If(name == v.Filename, h.Selected()), g.Text(name)))
		}
		content = append(content, h.Form(h.Class("section"), h.Method("get"), h.Action("/edit"),
			h.Div(h.Class("form-group"),
				h.Label(h.For("template"), g.Text("Select a template to edit")),
				h.Select(h.ID("template"), h.Name("template"),
					g.Attr("onchange", "this.form.submit()"),
					g.Group(options),
				),
			),
		))
	}

	if v.Error != "" {
		content = append(content, Warning(v.Error, v.RetryURL))
	}

	if t := v.Template; t != nil {
		detected := template.DetectVariables(t.Body)
		content = append(content, h.Div(h.Class("section template-form"),
			data.Signals(map[string]any{
				"mode":            "edit",
				"filename":        v.Filename,
				"name":            t.Name,
				"description":     t.Description,
				"body":            t.Body,
				"detected":        detectedText(detected),
				"variables":       template.FormatVariableList(detected),
				"variablesEdited": false,
				"saving":          false,
				"message":         "",
				"error":           "",
			}),
			h.Div(h.Class("form-group"),
				h.Label(h.For("name"), g.Text("Template Name (cannot be changed)")),
				h.Input(h.ID("name"), h.Type("text"), h.Value(template.Stem(v.Filename)), h.Disabled()),
			),
			templateFields(),
			saveButton("Save Changes"),
		))
	}

	return Layout("Edit Template - plat-respond", content...)
}

// templateFields are the description, body and variables inputs shared by
// the add and edit forms.
func templateFields() g.Node {
	return g.Group([]g.Node{
		h.Div(h.Class("form-group"),
			h.Label(h.For("description"), g.Text("Short Description (when to use this template)")),
			h.Input(h.ID("description"), h.Type("text"), data.Bind("description")),
		),
		h.Div(h.Class("form-group"),
			h.Label(h.For("body"), g.Text("Email body (use {variable} for placeholders)")),
			h.Textarea(h.ID("body"), h.Rows("12"),
				data.Bind("body"),
				data.On("input", "@post('/api/detect')"),
			),
		),
		h.Div(h.Class("info"),
			g.Text("Detected variables: "),
			h.Span(data.Text("$detected")),
		),
		h.Div(h.Class("form-group"),
			h.Label(h.For("variables"), g.Text("Edit variables (comma-separated)")),
			h.Input(h.ID("variables"), h.Type("text"),
				data.Bind("variables"),
				data.On("input", "$variablesEdited = true"),
			),
		),
	})
}

func saveButton(label string) g.Node {
	return g.Group([]g.Node{
		h.Button(
			data.On("click", "$saving = true; $message = ''; $error = ''; @post('/api/save')"),
			data.Attr("disabled", "$saving"),
			h.Span(data.Show("!$saving"), g.Text(label)),
			h.Span(data.Show("$saving"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Saving..."),
			),
		),
		h.Div(h.Class("success"), data.Show("$message"), data.Text("$message")),
		h.Div(h.Class("error"), data.Show("$error"), data.Text("$error")),
	})
}

// Warning renders a warning box, with a Retry link when retryURL is set.
func Warning(msg, retryURL string) g.Node {
	return h.Div(h.Class("warning"),
		g.Text(msg),
		g.If(retryURL != "", h.A(h.Class("retry"), h.Href(retryURL), g.Text("Retry"))),
	)
}

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--success: #10b981;
	--warning: #f59e0b;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* {
	box-sizing: border-box;
	margin: 0;
	padding: 0;
}

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
	box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.nav-brand {
	font-size: 1.5rem;
	font-weight: bold;
}

.nav-links a {
	color: white;
	text-decoration: none;
	margin-left: 2rem;
	opacity: 0.9;
}

.nav-links a:hover {
	opacity: 1;
}

.container {
	max-width: 960px;
	margin: 0 auto;
	padding: 2rem;
}

.footer {
	text-align: center;
	padding: 2rem;
	color: var(--text-muted);
	border-top: 1px solid var(--border);
	margin-top: 2rem;
}

h1 {
	margin-bottom: 1.5rem;
}

h2 {
	margin: 1rem 0;
	font-size: 1.25rem;
}

p {
	margin-bottom: 0.5rem;
}

.section {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
	border: 1px solid var(--border);
}

.filter-grid {
	display: grid;
	grid-template-columns: 1fr 1fr;
	gap: 1.5rem;
}

.picker {
	margin-top: 1.5rem;
}

.banner {
	background: rgba(220,220,220,0.7);
	padding: 1rem;
	border-radius: 8px;
	margin-bottom: 1.5rem;
	border: 1.5px solid #888;
}

.preview {
	background: var(--bg);
	border: 1px solid var(--border);
	border-radius: 8px;
	padding: 1rem;
	white-space: pre-wrap;
	margin-bottom: 1rem;
}

.actions {
	display: flex;
	gap: 1rem;
	margin-top: 1rem;
}

button {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.75rem 1.5rem;
	border-radius: 8px;
	cursor: pointer;
	font-size: 1rem;
	font-weight: 500;
}

button:hover {
	background: var(--primary-dark);
}

button:disabled {
	background: var(--text-muted);
	cursor: not-allowed;
}

.form-group {
	margin-bottom: 1.5rem;
}

.form-group label {
	display: block;
	margin-bottom: 0.5rem;
	font-weight: 500;
}

.form-group input,
.form-group select,
.form-group textarea,
#response {
	width: 100%;
	padding: 0.75rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font-size: 1rem;
	font-family: inherit;
}

.form-group select[multiple] {
	min-height: 8rem;
}

.info,
.warning,
.error,
.success {
	margin: 1rem 0;
	padding: 1rem;
	border-radius: 8px;
}

.info {
	background: #eef2ff;
}

.warning {
	background: #fef3c7;
	border: 1px solid var(--warning);
}

.retry {
	margin-left: 1rem;
	font-weight: 600;
	color: var(--primary-dark);
}

.error {
	background: #fee2e2;
	border: 1px solid var(--danger);
}

.success {
	background: #d1fae5;
	border: 1px solid var(--success);
}

.copy-msg {
	position: fixed;
	top: 10px;
	right: 10px;
	background: #4BB543;
	color: white;
	padding: 10px 20px;
	border-radius: 8px;
	z-index: 9999;
}

.loading-spinner {
	display: inline-block;
	width: 16px;
	height: 16px;
	border: 2px solid var(--border);
	border-top-color: var(--primary);
	border-radius: 50%;
	animation: spin 1s linear infinite;
}

@keyframes spin {
	to { transform: rotate(360deg); }
}

@media (max-width: 768px) {
	.filter-grid {
		grid-template-columns: 1fr;
	}

	.nav-links a {
		margin-left: 1rem;
	}
}
`
