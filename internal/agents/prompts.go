package agents

import (
	"fmt"
	"strings"
)

const planningSystemPrompt = `You are an Executive AI Assistant supervisor. Create DETAILED, ACTIONABLE execution plans.

**CRITICAL EFFICIENCY RULES:**
1. **ONE PLAN, ONE EXECUTION** - Create the plan once. It will NOT be modified during execution.
2. **CONSOLIDATE QUERIES** - Use single SQL aggregations instead of multiple separate queries.
3. **MINIMIZE AGENT CALLS** - Only use multiple agents when their specialized tools are needed.
4. **USE THE RIGHT TOOL** - Each agent has specific tools for specific purposes.

**AVAILABLE AGENTS AND TOOLS:**

| Agent | Tools | Data Access | Best For |
|-------|-------|-------------|----------|
| CONTENT_AGENT | CUSTOMER_FEEDBACK_SEARCH, CUSTOMER_CONTENT_ANALYZER | support ticket search index | Semantic search for complaints/feedback, sentiment analysis |
| DATA_ANALYST_AGENT | BUSINESS_INTELLIGENCE_ANALYST, CUSTOMER_BEHAVIOR_ANALYZER | customer behavior views | Usage patterns, churn analysis, behavior trends |
| RESEARCH_AGENT | STRATEGIC_MARKET_ANALYST, CUSTOMER_SEGMENT_INTELLIGENCE | strategic research views | Market intelligence, industry analysis, CLV |

**KEY DATA FIELDS:**
- CUSTOMERS: customer_id, company_size, industry, plan_type, status, signup_date, monthly_revenue
- USAGE_EVENTS: event_id, customer_id, feature_used, event_date, session_duration_minutes, actions_count
- SUPPORT_TICKETS: ticket_id, customer_id, category, priority, status, created_date, resolution_time_hours, satisfaction_score
- CHURN_EVENTS: churn_id, customer_id, churn_reason, churn_date, days_since_signup, final_monthly_revenue

**AGENT SELECTION GUIDE:**
- Need to SEARCH ticket text for specific issues → CONTENT_AGENT
- Need to ANALYZE specific customers' sentiment → CONTENT_AGENT
- Need aggregate BEHAVIOR metrics (usage, sessions, engagement) → DATA_ANALYST_AGENT
- Need STRATEGIC analysis (CLV, market share, industry trends) → RESEARCH_AGENT

**JSON Response Format:**
{
    "plan_summary": "[AGENT(s)] will use [TOOL(s)] to query [DATA_SOURCE(s)] for [GOAL]",
    "total_steps": <number>,
    "steps": [
        {
            "step_number": 1,
            "agent": "AGENT_NAME",
            "tool": "TOOL_NAME",
            "data_source": "View or search index name",
            "purpose": "Specific analytical task",
            "consolidated_query": "SINGLE query/search that gets ALL needed data",
            "expected_output": "Specific columns/fields to return",
            "uses_data_from": [],
            "next_agent": "AGENT_NAME or null if last step"
        }
    ],
    "combination_strategy": "How results will be joined/synthesized",
    "expected_final_output": "Final deliverable specification"
}

**RESPOND WITH ONLY THE JSON - Plan will be executed exactly as specified.**`

const synthesisSystemPrompt = `You are an Executive AI Assistant synthesizing agent results into a clear answer.

**Original Question**: %s
**Plan Summary**: %s
**Agent Results**:
%s

**Your Task**: Provide a clear, confident answer using the data returned.

**DO NOT:**
- List "missing data" or "incomplete analysis"
- Apologize for limitations
- Add disclaimers about data gaps

**Response Format:**

## Summary
[Direct answer in 2-3 sentences with key metrics]

## Key Findings
[3-5 bullet points of important insights]

## Recommendations
[2-3 actionable next steps based on findings]`

const synthesisUserPrompt = "Synthesize the agent results into a clear answer to the original question."

// stepContextLimit caps the amount of upstream output carried into a
// dependent step's query; synthOutputLimit caps each agent's contribution
// to the synthesis prompt.
const (
	stepContextLimit = 2000
	synthOutputLimit = 5000
)

func buildSynthesisPrompt(question, planSummary, outputs string) string {
	return fmt.Sprintf(synthesisSystemPrompt, question, planSummary, outputs)
}

// formatOutputsForSynthesis renders agent outputs in plan order, truncating
// oversized results so the synthesis prompt stays bounded.
func formatOutputsForSynthesis(outputs map[AgentName]string, plan Plan) string {
	var parts []string
	for _, step := range plan.Steps {
		output, ok := outputs[step.Agent]
		if !ok {
			continue
		}
		if len(output) > synthOutputLimit {
			output = output[:synthOutputLimit] + "\n... [truncated]"
		}
		total := plan.TotalSteps
		if total == 0 {
			total = len(plan.Steps)
		}
		parts = append(parts, fmt.Sprintf(
			"\n**%s** (Step %d/%d)\nPurpose: %s\n\nResults:\n%s\n",
			step.Agent, step.StepNumber, total, orDefault(step.Purpose, "N/A"), output,
		))
	}
	if len(parts) == 0 {
		return "No agent outputs available."
	}
	return strings.Join(parts, "\n")
}

// contextForStep assembles upstream outputs for a step that declares
// uses_data_from dependencies.
func contextForStep(step PlanStep, plan Plan, outputs map[AgentName]string) string {
	if len(step.UsesDataFrom) == 0 {
		return ""
	}
	var parts []string
	for _, num := range step.UsesDataFrom {
		for _, s := range plan.Steps {
			if s.StepNumber != num {
				continue
			}
			output, ok := outputs[s.Agent]
			if !ok {
				break
			}
			if len(output) > stepContextLimit {
				output = output[:stepContextLimit] + "..."
			}
			parts = append(parts, fmt.Sprintf("From %s: %s", s.Agent, output))
			break
		}
	}
	return strings.Join(parts, "\n")
}

func queryWithContext(query string, step PlanStep, plan Plan, outputs map[AgentName]string) string {
	ctx := contextForStep(step, plan, outputs)
	if ctx == "" {
		return query
	}
	return fmt.Sprintf("%s\n\nContext from previous analysis:\n%s", query, ctx)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
