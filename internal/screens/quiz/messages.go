package quiz

import (
	qz "github.com/abhisek/blitzquiz/internal/quiz"
)

// tickMsg is one countdown second for the question identified by key.
type tickMsg struct {
	key qz.Key
}

// advanceMsg ends the feedback period of the question identified by key.
type advanceMsg struct {
	key qz.Key
}

// toastExpiredMsg removes a toast once its display time is over.
type toastExpiredMsg struct {
	id int
}
