package entity

// Quote is a saved excerpt. BookTitle is a denormalized copy taken when the
// quote is created; renaming the book later does not update it, and the
// analytics tally intentionally groups by this stored string. BookID may
// dangle if the referenced book is gone.
type Quote struct {
	ID         string   `json:"-"`
	Text       string   `json:"text"`
	BookTitle  string   `json:"book_title"`
	BookID     string   `json:"book_id"`
	PageNumber string   `json:"page_number"`
	Tags       []string `json:"tags"`
	EntryDate  string   `json:"entry_date"`
}
