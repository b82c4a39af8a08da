package moderation

// Policy decides whether a message breaks the chat rules.
// It returns the offending word when it does.
type Policy interface {
	Violation(text string) (string, bool)
}

// Censorer is implemented by policies able to mask the words they flag.
type Censorer interface {
	Censor(text string) (string, []string)
}

// ExactToken flags a message made of exactly the token and nothing else.
type ExactToken string

func (t ExactToken) Violation(text string) (string, bool) {
	if text != string(t) {
		return "", false
	}
	return string(t), true
}

// ExactTokens flags a message equal to any of its tokens.
type ExactTokens []string

func (t ExactTokens) Violation(text string) (string, bool) {
	for _, token := range t {
		if word, ok := ExactToken(token).Violation(text); ok {
			return word, true
		}
	}
	return "", false
}
