package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"churnscope/pkg/errors"
	"churnscope/pkg/logger"
)

// Supervisor runs the plan → route → synthesize workflow. It builds an
// execution plan with its own model, invokes hosted agents step by step,
// then synthesizes their outputs into a single report. Agent failures are
// recorded and carried into synthesis rather than aborting the run.
type Supervisor struct {
	model  ChatModel
	client Client
	log    *logger.Logger
}

// NewSupervisor creates a supervisor over the given planning model and
// agent client.
func NewSupervisor(model ChatModel, client Client) *Supervisor {
	return &Supervisor{
		model:  model,
		client: client,
		log:    logger.Get().With("component", "supervisor"),
	}
}

// Ask answers a business question end to end.
func (s *Supervisor) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "empty question")
	}

	plan := s.buildPlan(ctx, question)
	s.log.Infow("Execution plan ready",
		"summary", plan.PlanSummary,
		"steps", len(plan.Steps),
	)

	answer := &Answer{
		Question:     question,
		PlanSummary:  plan.PlanSummary,
		AgentOutputs: make(map[AgentName]string),
	}

	for _, step := range plan.Steps {
		if !step.Agent.Known() {
			msg := fmt.Sprintf("step %d: unknown agent %q", step.StepNumber, step.Agent)
			s.log.Warnw("Skipping plan step", "reason", msg)
			answer.Errors = append(answer.Errors, msg)
			continue
		}

		query := step.ConsolidatedQuery
		if query == "" {
			query = question
		}
		query = queryWithContext(query, step, plan, answer.AgentOutputs)

		s.log.Infow("Routing to agent", "agent", step.Agent, "step", step.StepNumber)

		output, err := s.invoke(ctx, step.Agent, query)
		if err != nil {
			msg := fmt.Sprintf("%s error: %v", step.Agent, err)
			s.log.Warnw("Agent step failed", "agent", step.Agent, "error", err)
			answer.Errors = append(answer.Errors, msg)
			continue
		}

		answer.AgentOutputs[step.Agent] = output
	}

	answer.Report = s.synthesize(ctx, question, plan, answer)
	return answer, nil
}

// buildPlan asks the model for a JSON plan and falls back to a single
// CONTENT_AGENT step when planning fails.
func (s *Supervisor) buildPlan(ctx context.Context, question string) Plan {
	content, err := s.model.Complete(ctx, planningSystemPrompt, question)
	if err != nil {
		s.log.Warnw("Planning call failed, using fallback plan", "error", err)
		return fallbackPlan()
	}

	plan, err := parsePlan(content)
	if err != nil {
		s.log.Warnw("Planning response unparseable, using fallback plan", "error", err)
		return fallbackPlan()
	}
	return plan
}

// invoke streams the agent when possible and reassembles the chunks;
// stream-level errors surface as a single aggregated error.
func (s *Supervisor) invoke(ctx context.Context, agent AgentName, query string) (string, error) {
	ch, err := s.client.Stream(ctx, agent, query)
	if err != nil {
		// Streaming unavailable: fall back to a blocking call.
		return s.client.Invoke(ctx, agent, query)
	}

	var chunks []string
	for chunk := range ch {
		chunks = append(chunks, chunk)
	}

	result := ParseStreamChunks(chunks)
	if result.Failed() {
		multi := &errors.MultiError{}
		for _, msg := range result.Errors {
			multi.Add(errors.Wrap(errors.ErrAgentUnavailable, msg))
		}
		return "", multi.ToError()
	}
	return result.Text, nil
}

// synthesize turns the collected outputs into the final report. When the
// synthesis call itself fails, raw agent outputs are returned so the caller
// still gets the underlying data.
func (s *Supervisor) synthesize(ctx context.Context, question string, plan Plan, answer *Answer) string {
	formatted := formatOutputsForSynthesis(answer.AgentOutputs, plan)
	if len(answer.Errors) > 0 {
		formatted += fmt.Sprintf("\n\n**Notes:** %d error(s) occurred\n", len(answer.Errors))
	}

	s.log.Infow("Synthesizing results", "agents", len(answer.AgentOutputs))

	report, err := s.model.Complete(ctx, buildSynthesisPrompt(question, plan.PlanSummary, formatted), synthesisUserPrompt)
	if err != nil {
		s.log.Warnw("Synthesis failed, returning raw agent outputs", "error", err)
		return rawOutputs(answer.AgentOutputs)
	}
	return report
}

// parsePlan extracts the first JSON object from the model response and
// validates its steps.
func parsePlan(content string) (Plan, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Plan{}, errors.Wrap(errors.ErrPlanInvalid, "no JSON object in planning response")
	}

	var plan Plan
	if err := json.Unmarshal([]byte(content[start:end+1]), &plan); err != nil {
		return Plan{}, errors.Wrapf(errors.ErrPlanInvalid, "decode plan: %v", err)
	}
	if len(plan.Steps) == 0 {
		return Plan{}, errors.Wrap(errors.ErrPlanInvalid, "plan has no steps")
	}
	return plan, nil
}

func fallbackPlan() Plan {
	return Plan{
		PlanSummary: "Direct query routing",
		TotalSteps:  1,
		Steps: []PlanStep{
			{StepNumber: 1, Agent: AgentContent, Purpose: "Handle query"},
		},
	}
}

func rawOutputs(outputs map[AgentName]string) string {
	names := make([]AgentName, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	parts := make([]string, 0, len(names))
	for _, name := range names {
		output := outputs[name]
		if len(output) > stepContextLimit {
			output = output[:stepContextLimit]
		}
		parts = append(parts, fmt.Sprintf("**%s**:\n%s", name, output))
	}
	return "Analysis:\n\n" + strings.Join(parts, "\n\n")
}
