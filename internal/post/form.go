package post

// Entrées typées par opération, validées par une fonction pure avant
// toute écriture. Une validation qui échoue ne crée jamais de ligne.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PostInput struct {
	Text    string
	GroupID *string
}

func (in PostInput) Validate() []FieldError {
	var errs []FieldError
	if in.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "Le texte est obligatoire"})
	}
	return errs
}

type CommentInput struct {
	Text string
}

func (in CommentInput) Validate() []FieldError {
	var errs []FieldError
	if in.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "Le texte est obligatoire"})
	}
	return errs
}
