package report

const tpl = `Advent of Code Report
=====================

Task Information:
{{- range .TaskInfoItems }}
  {{ index . 0 }}: {{ index . 1 }}
{{- end }}

Answers:
{{ table .Answers }}
{{- with .Errors }}
Errors:
{{- range . }}
  {{ . }}
{{- end }}
{{ end -}}
`
