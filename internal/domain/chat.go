package domain

// ChatMessage is one entry in the append-only chat log. Timestamp is the
// capture-time string in "YYYY-MM-DD HH:MM:SS" local time.
type ChatMessage struct {
	ID        int64
	User      string
	Message   string
	Timestamp string
}
