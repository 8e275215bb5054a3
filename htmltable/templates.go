package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableID}} id='{{.TableID}}'{{end}}{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <thead>\n" +
		"    <tr>{{range $cell := .Cells}}<th{{if $cell.Attrs}} {{$cell.Attrs}}{{end}}>{{$cell.Raw}}</th>{{end}}</tr>\n" +
		"  </thead>\n" +
		"{{else}}" +
		"    <tr{{if .RowAttrs}} {{.RowAttrs}}{{end}}>{{range $cell := .Cells}}<td{{if $cell.Attrs}} {{$cell.Attrs}}{{end}}>{{$cell.Raw}}</td>{{end}}</tr>\n" +
		"{{end}}",
	))

	BodyTemplate = template.Must(template.New("body").Parse(
		"  <tbody>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"  </tbody>\n</table>",
	))
)

type TemplateContext struct {
	TableID    string
	TableClass string
	Caption    string
}

type CellTemplateContext struct {
	// Attrs holds pre-escaped attributes of the cell element.
	Attrs template.HTMLAttr
	Raw   template.HTML
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow bool
	RowIndex    int
	// RowAttrs holds pre-escaped attributes of the tr element.
	RowAttrs template.HTMLAttr
	Cells    []CellTemplateContext
}
