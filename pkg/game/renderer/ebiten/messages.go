package ebiten

// MaxMessages is how many status lines the window keeps on screen
const MaxMessages = 5

// appendMessage adds msg and drops the oldest lines beyond MaxMessages
func appendMessage(msgs []string, msg string) []string {
	msgs = append(msgs, msg)
	if len(msgs) > MaxMessages {
		msgs = append(msgs[:0], msgs[len(msgs)-MaxMessages:]...)
	}
	return msgs
}
