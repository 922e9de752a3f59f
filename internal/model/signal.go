package model

// Headline is a news article reduced to what the alert shows.
type Headline struct {
	Title string
	URL   string
}

// Decision is the threshold verdict for one swing.
type Decision struct {
	Alert     bool
	Glyph     string
	Threshold float64
}

// Brief is everything a notification is rendered from.
type Brief struct {
	Symbol     string
	Swing      *SwingResult
	Decision   *Decision
	Indicators *Indicators
	Headlines  []Headline
}

// AlertMessage is a rendered notification, built once per run.
type AlertMessage struct {
	Subject string
	Body    string
}
