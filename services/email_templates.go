package services

import "strings"

// EmailTemplate is a canned admin mail with {name} and {date}
// placeholders. The same three templates the admin email center has
// shipped with since launch.
type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

var EmailTemplates = []EmailTemplate{
	{
		ID:      "welcome",
		Name:    "ברוכים הבאים",
		Subject: "ברוכים הבאים ל-1000-2000!",
		Body: `שלום {name},

ברוכים הבאים למשפחת 1000-2000! אנחנו שמחים שהצטרפת אלינו.
מהיום, החופשה המושלמת שלך במרחק כמה קליקים.

בברכה,
צוות 1000-2000`,
	},
	{
		ID:      "booking-confirmed",
		Name:    "אישור הזמנה",
		Subject: "הזמנתכם אושרה!",
		Body: `שלום {name},

שמחים לעדכן שההזמנה שלך מתאריך {date} אושרה!
נציג שלנו ייצור איתך קשר טלפוני להשלמת הפרטים.

בברכה,
צוות 1000-2000`,
	},
	{
		ID:      "special-offer",
		Name:    "הצעה מיוחדת",
		Subject: "הצעה מיוחדת רק עבורך!",
		Body: `שלום {name},

הכנו עבורך הצעה מיוחדת לחופשה הבאה שלך - חבילות נבחרות במחירים של 1000-2000 ₪ בלבד.
ההצעה בתוקף לזמן מוגבל.

בברכה,
צוות 1000-2000`,
	},
}

// TemplateByID returns the template and whether it exists.
func TemplateByID(id string) (EmailTemplate, bool) {
	for _, t := range EmailTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return EmailTemplate{}, false
}

// Render fills the placeholders for one recipient.
func (t EmailTemplate) Render(name, date string) (subject, body string) {
	r := strings.NewReplacer("{name}", name, "{date}", date)
	return r.Replace(t.Subject), r.Replace(t.Body)
}
