package models

// Contact form field names, shared by the HTML form, the JSON API and the
// relay payload.
const (
	FieldNom         = "nom"
	FieldEmail       = "email"
	FieldTelephone   = "telephone"
	FieldEntreprise  = "entreprise"
	FieldTypeProjet  = "typeProjet"
	FieldDescription = "description"
)

// ContactRequest holds the six free-text fields of the contact form
type ContactRequest struct {
	Nom         string `json:"nom"`
	Email       string `json:"email"`
	Telephone   string `json:"telephone"`
	Entreprise  string `json:"entreprise"`
	TypeProjet  string `json:"typeProjet"`
	Description string `json:"description"`
}

// FieldErrors maps a form field name to its user-facing message
type FieldErrors map[string]string

// Submission is a validated contact request on its way to the relays
type Submission struct {
	ID         string
	Request    ContactRequest
	RemoteAddr string
	UserAgent  string
}

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is the notification shown after a contact submission
type Toast struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
