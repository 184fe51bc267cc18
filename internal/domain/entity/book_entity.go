package entity

// Book statuses as stored in the books document.
const (
	StatusWantToRead       = "Want to Read"
	StatusCurrentlyReading = "Currently Reading"
	StatusCompleted        = "Completed"
	StatusDropped          = "Dropped"
)

// TimeLayout is the timestamp format used for entry_date and last_updated
// in the persisted documents.
const TimeLayout = "2006-01-02 15:04:05"

// Book is one reading-journal entry. The ID is the key of the user's book
// map and is not serialized into the record itself.
type Book struct {
	ID          string   `json:"-"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Year        string   `json:"year"` // free text, kept as entered
	Genres      []string `json:"genres"`
	Status      string   `json:"status"`
	Rating      int      `json:"rating"` // 1-5
	Notes       string   `json:"notes"`
	EntryDate   string   `json:"entry_date"`
	LastUpdated string   `json:"last_updated"`
}

// BookUpdate carries a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title  *string
	Author *string
	Year   *string
	Genres *[]string
	Status *string
	Rating *int
	Notes  *string
}
