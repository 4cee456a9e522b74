package llm

func langInstruction(lang string) string {
	switch lang {
	case "en":
		return "Write your entire response in English."
	case "ru":
		return "Пиши весь ответ по-русски."
	default:
		return "Use the same language as the code and commit messages (Russian or English)."
	}
}

func analysisPrompt(lang string) string {
	return `You are an experienced tech lead. Analyze the following git diff and respond in Markdown. ` + langInstruction(lang) + `

Structure (required):

1. **Brief summary** — One sentence: what was done in these changes.
2. **Key changes** — List main edits (files, logic, refactoring).
3. **Potential risks** — Possible bugs, leaks, or bad practices; if none, say "None found."

Be concise. Do not repeat the diff.`
}

func commitPrompt(lang string) string {
	return `Based on this git diff, write ONE short commit message line (max 72 characters, imperative mood). ` + langInstruction(lang) + `

Be SPECIFIC: state what was actually changed — mention files or logic (e.g. "Add JWT validation in auth.py", "Refactor login to use server sessions"). Avoid generic phrases like "Fix code", "Update", "Add comments", "Fix code structure".

Output ONLY the message text, no quotes or explanation.`
}
