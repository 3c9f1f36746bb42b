package handler

import (
	"bytes"
	"html/template"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>HeatRisk calendars</title>
    <style>
      body { margin: 0 auto; max-width: 1100px; padding: 16px; font-family: system-ui, sans-serif; }
      form { display: flex; gap: 12px; flex-wrap: wrap; margin-bottom: 12px; }
      label { display: flex; flex-direction: column; font-size: 13px; gap: 4px; }
      img { max-width: 100%; border: 1px solid #cfcfcf; }
      #caption { margin-top: 8px; color: #444; }
    </style>
  </head>
  <body>
    <h1>HeatRisk calendars</h1>
    <form id="selector" method="get" action="/">
      <input type="hidden" name="changed" value="" />
      <label>State
        <select id="stateSelect" name="state" onchange="this.form.elements.changed.value='state'; this.form.submit()">
{{- if .Empty}}
          <option>{{.Placeholder}}</option>
{{- else}}
{{- range .States}}
          <option value="{{.Value}}"{{if eq .Value $.Selection.State}} selected{{end}}>{{.Label}}</option>
{{- end}}
{{- end}}
        </select>
      </label>
      <label>Station
        <select id="stationSelect" name="station" onchange="this.form.elements.changed.value='station'; this.form.submit()">
{{- range .Stations}}
          <option value="{{.Value}}"{{if eq .Value $.Selection.StationID}} selected{{end}}>{{.Label}}</option>
{{- end}}
        </select>
      </label>
      <label>Year
        <select id="yearSelect" name="year" onchange="this.form.elements.changed.value='year'; this.form.submit()">
{{- range .Years}}
          <option value="{{.Value}}"{{if eq .Value $.Selection.Year}} selected{{end}}>{{.Label}}</option>
{{- end}}
        </select>
      </label>
      <noscript><button type="submit">Show</button></noscript>
    </form>
    <img id="calendarImg" alt="HeatRisk calendar"{{if not .Empty}} src="{{.Display.ImagePath}}"{{end}} />
    <div id="caption">{{.Display.Caption}}</div>
  </body>
</html>
`))

func renderPage(view *model.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
