package landing

import (
	"embed"
	"html/template"
	"io"
	"time"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"year": func() int { return time.Now().Year() },
			"inc":  func(i int) int { return i + 1 },
		}).
		ParseFS(templateFS, "templates/index.html"),
)

func Render(w io.Writer, p Page) error {
	return indexTemplate.Execute(w, p)
}
