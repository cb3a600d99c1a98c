package models

// NavItem is one entry of the navigation bar
type NavItem struct {
	Name string
	Href string
	ID   string
}

// Category is a portfolio filter
type Category struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Expertise is a service card in the expertise section
type Expertise struct {
	ID           string
	Title        string
	Subtitle     string
	Description  string
	Features     []string
	Technologies []string
	Icon         string
}

// Value is a short selling point shown under the expertise cards
type Value struct {
	Title       string
	Description string
	Icon        string
}

// ProcessStep is one step of the delivery process showcase
type ProcessStep struct {
	Number      int
	Title       string
	Description string
	Details     []string
	Icon        string
}

// ProjectType is a choice of the contact form select
type ProjectType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FooterLink is a named link in the footer
type FooterLink struct {
	Name string
	Href string
}

// FooterSection groups footer links under a heading
type FooterSection struct {
	Title string
	Links []FooterLink
}

// ContactChannel is a contact line in the footer (mail, phone, address)
type ContactChannel struct {
	Icon string
	Text string
	Href string
}
