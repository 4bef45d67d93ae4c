package whatsapp

// GreetingInput carries what the pre-filled message references.
type GreetingInput struct {
	Name        string // Ex: "João"
	Company     string // Ex: "Acme Ltda" (opcional)
	ProjectType string // Ex: "Vídeo institucional" (opcional)
}
