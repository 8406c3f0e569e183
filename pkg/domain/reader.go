package domain

// Reader is a library patron record.
type Reader struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReaderUpdate carries the fields of a partial update. A nil field is left
// untouched by the store.
type ReaderUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
