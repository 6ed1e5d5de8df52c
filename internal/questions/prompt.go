package questions

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write cards for a fast true/false arithmetic game.

Rules:
- Each card is one equation of the form "a op b = c" with integer operands and result. Use +, -, × or ÷.
- Division must be exact. Subtraction results must not be negative.
- Roughly half the equations must be false. A false equation shows a result that is off by 1 to 5 from the true value, so it looks plausible at a glance.
- Set is_correct to true only if the equation is arithmetically true.
- Match the requested difficulty level: level 1 is single-digit addition, level 10 is three-digit operands and two-digit multiplication.
- Do not repeat any equation from the "already shown" list.`

// levelGuide describes the operand ranges for a level in the prompt.
func levelGuide(level int) string {
	r := operandsFor(level)
	var b strings.Builder
	fmt.Fprintf(&b, "addition/subtraction operands %d-%d", r.addMin, r.addMax)
	if r.mulMax > 0 {
		fmt.Fprintf(&b, "; multiplication/division factors %d-%d", r.mulMin, r.mulMax)
	}
	fmt.Fprintf(&b, "; operators %s", strings.Join(r.ops, " "))
	return b.String()
}

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Count: %d\n", input.Count)
	fmt.Fprintf(&b, "Difficulty level: %d of 10\n", input.Level)
	fmt.Fprintf(&b, "Guide: %s\n", levelGuide(input.Level))

	b.WriteString("\nAlready shown in this game:\n")
	b.WriteString(buildDedup(input.PriorEquations, cfg.MaxPriorEquations))

	return b.String()
}

// buildDedup formats prior equations for the prompt, respecting the max limit.
// Returns "None" if there are none.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, eq := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, eq)
	}
	return strings.TrimRight(b.String(), "\n")
}
