// Package i18n holds the localized UI message tables. Lookup is a pure
// function over (locale, key) with English as the fallback locale.
package i18n

import "fmt"

const fallbackLocale = "en"

var messages = map[string]map[string]string{
	"en": {
		"error_prefix":          "Error:",
		"no_changes":            "No changes. Use --staged for index or change files. For last commit: smart-diff --ref HEAD",
		"analyzing_last":        "No local changes — analyzing last commit (HEAD).",
		"model_label":           "Model: %s. Analyzing changes...",
		"commit_msg_generating": "Model: %s. Generating commit message...",
		"commit_written":        "Message written to %s",
		"suggested_commit":      "Suggested commit message",
		"analysis_title":        "Smart Diff — change analysis",
		"ollama_connect":        "Could not connect to Ollama. Start Ollama (https://ollama.com/download) and try again.",
		"ollama_model_not_found": "Model '%[1]s' not found in Ollama. Install: ollama pull %[1]s\n" +
			"Or set an installed model: smart-diff -m <name>. List: ollama list",
		"ollama_hint":         "Hint: ollama list — list models, ollama pull %s — install.",
		"config_model_set":    "Default model set to: %s",
		"config_lang_set":     "Default language set to: %s",
		"config_show":         "model = %s\nlang = %s",
		"config_path":         "Config file: %s",
		"html_report_written": "HTML report written to %s",
	},
	"ru": {
		"error_prefix":          "Ошибка:",
		"no_changes":            "Нет изменений. Используй --staged для индекса или измени файлы. Для последнего коммита: smart-diff --ref HEAD",
		"analyzing_last":        "Нет текущих изменений — анализирую последний коммит (HEAD).",
		"model_label":           "Модель: %s. Анализ изменений...",
		"commit_msg_generating": "Модель: %s. Генерация сообщения коммита...",
		"commit_written":        "Сообщение записано в %s",
		"suggested_commit":      "Предложенное сообщение коммита",
		"analysis_title":        "Smart Diff — разбор изменений",
		"ollama_connect":        "Не удалось подключиться к Ollama. Запусти Ollama (https://ollama.com/download) и повтори команду.",
		"ollama_model_not_found": "Модель '%[1]s' не найдена в Ollama. Установи: ollama pull %[1]s\n" +
			"Либо укажи модель: smart-diff -m <имя>. Список: ollama list",
		"ollama_hint":         "Подсказка: ollama list — список моделей, ollama pull %s — установка.",
		"config_model_set":    "Модель по умолчанию: %s",
		"config_lang_set":     "Язык по умолчанию: %s",
		"config_show":         "model = %s\nlang = %s",
		"config_path":         "Файл конфига: %s",
		"html_report_written": "HTML-отчёт записан в %s",
	},
}

// T returns the message for key in locale, formatted with args. An unknown
// locale or key falls back to English; a key missing there too is returned
// as-is.
func T(locale, key string, args ...any) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[fallbackLocale]
	}
	msg, ok := table[key]
	if !ok {
		msg, ok = messages[fallbackLocale][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Resolve maps a configured language to a presentation locale: "auto"
// renders UI text in English.
func Resolve(lang string) string {
	if lang == "" || lang == "auto" {
		return "en"
	}
	return lang
}
