package entity

// AgentStatus is the availability label of a CHIPS agent.
type AgentStatus string

// The directory does not track agent status yet, so every agent reads as active.
const AgentStatusActive AgentStatus = "active"

// Agent is a CHIPS community health worker.
// CatchmentAreaIDs[0] is the primary area.
type Agent struct {
	ID               string      `json:"id"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	PhoneNumber      string      `json:"phoneNumber"`
	CatchmentAreaIDs []string    `json:"catchmentAreaIds"`
	Status           AgentStatus `json:"status"`
}

// FullName joins first and last name for display and search.
func (a Agent) FullName() string {
	return joinName(a.FirstName, a.LastName)
}

// PrimaryAreaID returns the first linked community, if any.
func (a Agent) PrimaryAreaID() (string, bool) {
	if len(a.CatchmentAreaIDs) == 0 {
		return "", false
	}

	return a.CatchmentAreaIDs[0], true
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
