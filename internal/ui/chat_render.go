package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"

	"github.com/banterhq/banter/internal/chat"
)

// renderMessage renders one message with its role label and wrapped body
func renderMessage(msg chat.Message, width int) string {
	var label string
	switch msg.Role {
	case chat.RoleUser:
		label = ChatUserStyle.Render("You")
	default:
		label = ChatAssistantStyle.Render("Banter")
	}

	body := renderBody(msg.Content, width)
	return label + "\n" + ChatMessageStyle.Render(body)
}

// renderBody wraps prose and syntax-highlights fenced code blocks
func renderBody(content string, width int) string {
	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlock strings.Builder

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				codeBlock.Reset()
			} else {
				inCodeBlock = false
				result.WriteString(highlightCode(codeBlock.String(), codeBlockLang))
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlock.Len() > 0 {
				codeBlock.WriteString("\n")
			}
			codeBlock.WriteString(line)
		} else {
			result.WriteString(wrapText(line, width))
			result.WriteString("\n")
		}
	}

	// Unclosed fence, render what we have
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlock.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}

// wrapText wraps text to the given width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}
