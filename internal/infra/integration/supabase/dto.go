package supabase

import "time"

// leadRow is the leads table as PostgREST sees it. Blank optional fields
// travel as null.
type leadRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	WhatsApp    *string   `json:"whatsapp"`
	ProjectType *string   `json:"project_type"`
	Objective   *string   `json:"objective"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type notificationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// serviceHeaders authenticates as the given key against every Supabase API.
func serviceHeaders(key string) map[string]string {
	return map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	}
}
