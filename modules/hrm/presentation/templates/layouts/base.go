package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type BaseProps struct {
	Title string
}

// Base is the document shell: head with the htmx runtime and the stylesheet,
// body rendered from the children component.
func Base(props BaseProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>` +
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>` +
			`<title>` + templ.EscapeString(props.Title) + `</title>` +
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>` +
			`<script src="https://cdn.tailwindcss.com"></script>` +
			`<link rel="stylesheet" href="/assets/css/main.css"/>` +
			`</head><body class="bg-surface-200 text-text-900">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
