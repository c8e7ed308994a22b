package quiz

// Level classifies a notification for presentation.
type Level int

const (
	LevelWarning Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Signal identifies which of the four quiz notifications was raised.
type Signal int

const (
	SignalNoAnswer Signal = iota
	SignalCorrect
	SignalIncorrect
	SignalTimeUp
)

// Notification is a transient message for the user. Detail names the correct
// answer on incorrect and time's up signals.
type Notification struct {
	Signal Signal
	Level  Level
	Title  string
	Detail string
}

// Notifier receives notifications raised by a Controller. Delivery is
// fire-and-forget; the controller never waits on the sink.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

func noAnswerNotification() Notification {
	return Notification{
		Signal: SignalNoAnswer,
		Level:  LevelWarning,
		Title:  "Please select an answer",
	}
}

func correctNotification() Notification {
	return Notification{
		Signal: SignalCorrect,
		Level:  LevelSuccess,
		Title:  "Correct!",
		Detail: "Well done!",
	}
}

func incorrectNotification(answer string) Notification {
	return Notification{
		Signal: SignalIncorrect,
		Level:  LevelError,
		Title:  "Incorrect",
		Detail: "The correct answer was " + answer,
	}
}

func timeUpNotification(answer string) Notification {
	return Notification{
		Signal: SignalTimeUp,
		Level:  LevelError,
		Title:  "Time's up!",
		Detail: "The correct answer was " + answer,
	}
}
