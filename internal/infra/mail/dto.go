package mail

type leadEmailData struct {
	Name        string
	Email       string
	WhatsApp    string
	ChatURL     string
	ReplyURL    string
	Company     string
	ProjectType string
	Deadline    string
	Objective   string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string

	dialer dialer
}
