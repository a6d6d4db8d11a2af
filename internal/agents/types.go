package agents

import "context"

// AgentName identifies a hosted specialized agent.
type AgentName string

const (
	// AgentContent searches and analyzes support ticket text and sentiment.
	AgentContent AgentName = "CONTENT_AGENT"

	// AgentDataAnalyst answers aggregate behavior and churn questions.
	AgentDataAnalyst AgentName = "DATA_ANALYST_AGENT"

	// AgentResearch handles market intelligence and strategic analysis.
	AgentResearch AgentName = "RESEARCH_AGENT"
)

// KnownAgents lists every routable agent.
func KnownAgents() []AgentName {
	return []AgentName{AgentContent, AgentDataAnalyst, AgentResearch}
}

// Known reports whether the name maps to a routable agent.
func (a AgentName) Known() bool {
	switch a {
	case AgentContent, AgentDataAnalyst, AgentResearch:
		return true
	}
	return false
}

// Client invokes hosted agents. Invoke returns the complete output; Stream
// yields raw partial chunks that ParseStreamChunks assembles.
type Client interface {
	Invoke(ctx context.Context, agent AgentName, query string) (string, error)
	Stream(ctx context.Context, agent AgentName, query string) (<-chan string, error)
}

// ChatModel is the supervisor's own LLM, used for planning and synthesis.
type ChatModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Plan is the immutable execution plan: created once, executed linearly,
// never modified while running.
type Plan struct {
	PlanSummary         string     `json:"plan_summary"`
	TotalSteps          int        `json:"total_steps"`
	Steps               []PlanStep `json:"steps"`
	CombinationStrategy string     `json:"combination_strategy,omitempty"`
	ExpectedFinalOutput string     `json:"expected_final_output,omitempty"`
}

// PlanStep is one routed agent call.
type PlanStep struct {
	StepNumber        int       `json:"step_number"`
	Agent             AgentName `json:"agent"`
	Tool              string    `json:"tool,omitempty"`
	DataSource        string    `json:"data_source,omitempty"`
	Purpose           string    `json:"purpose,omitempty"`
	ConsolidatedQuery string    `json:"consolidated_query,omitempty"`
	ExpectedOutput    string    `json:"expected_output,omitempty"`
	UsesDataFrom      []int     `json:"uses_data_from,omitempty"`
	NextAgent         string    `json:"next_agent,omitempty"`
}

// Answer is the supervisor's final product. Errors carries per-agent
// failures collected along the way; they never abort the workflow.
type Answer struct {
	Question     string
	PlanSummary  string
	Report       string
	AgentOutputs map[AgentName]string
	Errors       []string
}
