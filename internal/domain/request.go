package domain

import "strings"

const CustomSolutionAgent = "Custom Solution"

type AgentRequest struct {
	FullName     string
	Email        string
	Company      string
	Agent        string
	Requirements string
}

type AgentRequestReceipt struct {
	Message   string
	RequestID string
}

// IsRequestableAgent reports whether name can be picked on the request form:
// any catalog agent name, or the custom solution entry.
func IsRequestableAgent(agents []Agent, name string) bool {
	name = strings.TrimSpace(name)
	if name == CustomSolutionAgent {
		return true
	}
	for _, agent := range agents {
		if agent.Name == name {
			return true
		}
	}
	return false
}
