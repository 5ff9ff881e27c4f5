package domain

// Contact is a nested contact record stored as JSONB on supplier and
// software/application rows.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Empty reports whether no contact detail is set.
func (c Contact) Empty() bool {
	return c.Name == "" && c.Title == "" && c.Email == "" && c.Phone == ""
}
