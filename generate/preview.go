package generate

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"gridgen/grid"
)

// previewToXHTML builds a demo page showing the generated grid classes. The
// page links the generated stylesheet by name, so both files are expected
// side by side.
func previewToXHTML(title, stylesheet string, ctx *grid.Context, def *Definition) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")

	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	link := head.CreateElement("link")
	link.CreateAttr("rel", "stylesheet")
	link.CreateAttr("type", "text/css")
	link.CreateAttr("href", stylesheet)

	titleElem := head.CreateElement("title")
	titleElem.SetText(title)

	body := html.CreateElement("body")
	wrapper := body.CreateElement("div")
	wrapper.CreateAttr("class", "wrapper")

	h1 := wrapper.CreateElement("h1")
	h1.SetText(title)

	// Single columns of every numeric span.
	for n := 1; n <= ctx.TotalColumns; n++ {
		row := wrapper.CreateElement("div")
		row.CreateAttr("class", "row")

		name := "col-" + strconv.Itoa(n)
		col := row.CreateElement("div")
		col.CreateAttr("class", name)
		col.SetText(fmt.Sprintf("%s (%d of %d)", name, n, ctx.TotalColumns))
	}

	// Author-named classes, one per row.
	for _, class := range def.Classes {
		row := wrapper.CreateElement("div")
		row.CreateAttr("class", "row")

		name := slug.Make(class.Name)
		col := row.CreateElement("div")
		col.CreateAttr("class", name)
		col.SetText(name + " (" + class.Width + ")")
	}

	doc.Indent(2)
	return doc
}
