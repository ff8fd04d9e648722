package todos

// Todo is the persisted record. The create endpoint decodes its own request
// struct, so client payloads never set ID here.
type Todo struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}
