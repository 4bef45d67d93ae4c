package whatsapp

import (
	"net/url"
	"regexp"
	"strings"
)

const baseURL = "https://wa.me/"

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone keeps only the digits, the format wa.me expects.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// DeepLink opens a chat with phone pre-filled with text. An empty text
// yields a bare chat link.
func DeepLink(phone, text string) string {
	link := baseURL + NormalizePhone(phone)
	if text == "" {
		return link
	}
	return link + "?text=" + encodeText(text)
}

// Greeting is the message a prospect sends the company after submitting the
// contact form.
func Greeting(in GreetingInput) string {
	var b strings.Builder
	b.WriteString("Olá! Meu nome é ")
	b.WriteString(strings.TrimSpace(in.Name))
	if c := strings.TrimSpace(in.Company); c != "" {
		b.WriteString(", da empresa ")
		b.WriteString(c)
	}
	b.WriteString(". Acabei de enviar uma solicitação pelo site e gostaria de um orçamento")
	if p := strings.TrimSpace(in.ProjectType); p != "" {
		b.WriteString(" para ")
		b.WriteString(p)
	} else {
		b.WriteString(" para um projeto audiovisual")
	}
	b.WriteString(".")
	return b.String()
}

// ReplyGreeting is what the operator sends back from the notification email.
func ReplyGreeting(name string) string {
	return "Olá " + strings.TrimSpace(name) + "! Recebemos sua solicitação de orçamento e vamos analisá-la."
}

// encodeText matches encodeURIComponent: spaces become %20, not "+".
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
