package entities

// Message is a single inbound chat message. It lives for one request only
// and is never stored.
type Message struct {
	ChatID   int64
	UserID   int64
	UserName string // sender display name, may be empty
	Content  string
}
