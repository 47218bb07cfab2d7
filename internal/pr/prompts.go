package pr

import (
	"strings"
	"text/template"
)

const titlePrompt = `
You're a senior software engineer writing a pull request.

Based on this git diff, generate a short, descriptive PR title in sentence case.
Do NOT include any punctuation or markdown, just return the title text.
{{if .Files}}
Changed files:
{{.Files}}{{end}}
Git diff:
{{.Diff}}
{{if .Explanation}}
Additional context from the author:
{{.Explanation}}{{end}}`

const descriptionPrompt = `
You're a senior software engineer writing a pull request description.

Please generate a professional, **short and concise** PR description in **Markdown format**, with no title.

Keep it focused and direct. Avoid redundant wording. Use bullet points where possible.

Use this structure:

## 🧠 Summary
A 2-3 sentence summary of what this PR does, in clear language.

## ✅ Changes
A concise bullet list of changes (ideally 3-5 items).
{{if .Files}}
Changed files:
{{.Files}}{{end}}
Use the following git diff as input:

{{.Diff}}
{{if .Explanation}}
Additional context from the author:
{{.Explanation}}{{end}}

Do not include any title or triple backticks. Only return the description body.`

var (
	titleTmpl       = template.Must(template.New("title").Parse(titlePrompt))
	descriptionTmpl = template.Must(template.New("description").Parse(descriptionPrompt))
)

// promptData is what the prompt templates are rendered with.
type promptData struct {
	Diff        string
	Explanation string
	// Files is the per-file summary of the diff, one line per file.
	Files string
}

// TitlePrompt renders the prompt asking for a pull request title.
func TitlePrompt(diff, explanation, files string) (string, error) {
	return render(titleTmpl, promptData{Diff: diff, Explanation: explanation, Files: files})
}

// DescriptionPrompt renders the prompt asking for a pull request body.
func DescriptionPrompt(diff, explanation, files string) (string, error) {
	return render(descriptionTmpl, promptData{Diff: diff, Explanation: explanation, Files: files})
}

func render(t *template.Template, data promptData) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
