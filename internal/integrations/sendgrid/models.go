package sendgrid

// Attachment вложение письма
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message письмо одному получателю
type Message struct {
	ToEmail     string
	ToName      string
	Subject     string
	PlainText   string
	HTML        string
	Attachments []Attachment
}

// ErrorResponse тело ошибки SendGrid
type ErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}
