package navitia

type Disruption struct {
	ID     string `json:"id,omitempty" groups:"detailed"`
	Status string `json:"status" groups:"basic"`

	Severity *Severity `json:"severity,omitempty" groups:"basic"`
	Messages []Message `json:"messages" groups:"basic"`
}

type Severity struct {
	Name   string `json:"name" groups:"basic"`
	Effect string `json:"effect,omitempty" groups:"detailed"`
}

type Message struct {
	Text string `json:"text" groups:"basic"`
}

// SeverityName returns an empty string when the disruption carries no severity
func (d *Disruption) SeverityName() string {
	if d == nil || d.Severity == nil {
		return ""
	}

	return d.Severity.Name
}

// FirstMessage reports false when there are no messages at all
func (d *Disruption) FirstMessage() (string, bool) {
	if d == nil || len(d.Messages) == 0 {
		return "", false
	}

	return d.Messages[0].Text, true
}

type DisruptionsResponse struct {
	Disruptions []*Disruption `json:"disruptions"`
}
